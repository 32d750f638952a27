// Package world builds the spinning cube scene on a host surface and
// drives it frame by frame.
package world

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"spincube/internal/animation"
	"spincube/internal/components"
	"spincube/internal/config"
	"spincube/internal/engine"
	"spincube/internal/geometry"
	"spincube/internal/host"
	"spincube/internal/linear"
	"spincube/internal/logging"
	"spincube/internal/render"
)

const (
	// SurfaceID is the id of the surface Init mounts into the root.
	SurfaceID = "scene"
	// SpinnerScript is the registered script that turns the cube.
	SpinnerScript = "Spinner"
)

var (
	ErrNoContainer = errors.New("world: no root container")
	ErrNoRenderer  = errors.New("world: no renderer factory")
)

// Context is what the hosting side hands to Init.
type Context struct {
	Root        *host.Root
	Config      config.Config
	NewRenderer render.Factory
}

type World struct {
	Scene    *engine.Scene
	Camera   *components.Camera
	Cube     *engine.GameObject
	Renderer render.Renderer
	Surface  *host.Surface

	// Data is the payload passed to Init. It is kept, never read.
	Data any

	// Ticked fires after every rendered frame with the tick number, on the
	// loop goroutine. Add listeners before starting the loop.
	Ticked engine.Event[uint64]

	cfg    config.Config
	mu     sync.Mutex
	closed bool
}

// Init replaces the root's content with one surface sized from the config,
// then builds a camera, a renderer attached to that surface, and a spinning
// cube. The loop is not started; see Start and Run.
//
// Each call builds an independent world. Calling it again on the same root
// replaces the previous surface.
func Init(ctx Context, data any) (*World, error) {
	if ctx.Root == nil {
		return nil, ErrNoContainer
	}
	if ctx.NewRenderer == nil {
		return nil, ErrNoRenderer
	}
	cfg := ctx.Config
	cfg.Normalize()
	fill, err := config.ParseColor(cfg.Cube.Color)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	shape, err := geometry.Box(cfg.Cube.Size, cfg.Cube.Size, cfg.Cube.Size)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	log := logging.Logger()

	surface, err := host.NewSurface(SurfaceID, cfg.Viewport.Width, cfg.Viewport.Height)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	prev := ctx.Root.Children()
	ctx.Root.ReplaceContent(surface)
	log.Info("surface mounted", "id", SurfaceID, "width", surface.Width, "height", surface.Height)
	// On failure the root gets its previous content back.
	unmount := func() {
		ctx.Root.ReplaceContent(prev...)
	}

	w := &World{
		Scene: engine.NewScene("Main"),
		Data:  data,
		cfg:   cfg,
	}

	camObj := engine.NewGameObject("Camera")
	camObj.Transform.Position = linear.V3(0, 0, cfg.Camera.Distance)
	w.Camera = components.NewCamera(surface.Aspect())
	w.Camera.FOV = cfg.Camera.FOV
	w.Camera.Near = cfg.Camera.Near
	w.Camera.Far = cfg.Camera.Far
	camObj.AddComponent(w.Camera)
	w.Scene.AddGameObject(camObj)

	w.Renderer, err = ctx.NewRenderer(surface.Width, surface.Height)
	if err != nil {
		unmount()
		return nil, fmt.Errorf("world: create renderer: %w", err)
	}
	log.Info("renderer created", "type", fmt.Sprintf("%T", w.Renderer))

	w.Surface, err = ctx.Root.ElementByID(SurfaceID)
	if err == nil {
		err = w.Surface.Attach(w.Renderer)
	}
	if err != nil {
		w.Renderer.Close()
		unmount()
		return nil, fmt.Errorf("world: attach renderer: %w", err)
	}

	spinner := engine.CreateScript(SpinnerScript, map[string]any{"step": cfg.Cube.Step})
	if spinner == nil {
		w.Renderer.Close()
		unmount()
		return nil, fmt.Errorf("world: script %q not registered", SpinnerScript)
	}
	w.Cube = engine.NewGameObject("Cube")
	w.Cube.AddComponent(components.NewMeshRenderer(shape, fill))
	w.Cube.AddComponent(spinner)
	w.Scene.AddGameObject(w.Cube)

	w.Scene.Start()
	return w, nil
}

// Tick advances the scene by one frame and redraws it.
// A closed surface is reported as animation.ErrStop.
func (w *World) Tick(tick uint64, deltaTime float64) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return animation.ErrStop
	}
	w.Scene.Update(deltaTime)
	err := w.Renderer.Render(w.Scene, w.Camera)
	w.mu.Unlock()

	if errors.Is(err, render.ErrSurfaceClosed) {
		return animation.ErrStop
	}
	if err != nil {
		return err
	}
	w.Ticked.Invoke(tick)
	return nil
}

// Loop returns a loop ticking the world on sched, stopping after the
// configured frame budget if one is set.
func (w *World) Loop(sched animation.Scheduler) *animation.Loop {
	return animation.New("world", sched, w.Tick).Limit(w.cfg.Loop.Frames)
}

// Start runs the loop on its own goroutine. Use the handle to stop it.
func (w *World) Start(ctx context.Context, sched animation.Scheduler) *animation.Handle {
	return w.Loop(sched).Start(ctx)
}

// Run runs the loop on the calling goroutine until ctx is cancelled or the
// surface closes. Backends bound to the main thread use this.
func (w *World) Run(ctx context.Context, sched animation.Scheduler) error {
	return w.Loop(sched).Run(ctx)
}

// Rotation returns the cube's current Euler angles.
func (w *World) Rotation() linear.Vec3 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Cube.Transform.Rotation
}

// Close releases the renderer. Ticks after Close stop the loop.
func (w *World) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	return w.Renderer.Close()
}
