// Package rlnative draws scenes in a native raylib window.
//
// raylib is bound to the OS thread that opened the window: create the
// renderer, render and close it from one locked goroutine, and pace the
// loop with animation.Paced (EndDrawing waits for the target FPS).
package rlnative

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"spincube/internal/components"
	"spincube/internal/engine"
	"spincube/internal/geometry"
	"spincube/internal/logging"
	"spincube/internal/render"
)

type Options struct {
	Title     string
	TargetFPS int
	// HUD draws the frame counter and a Stop button.
	HUD bool
}

type Renderer struct {
	width, height int32
	opts          Options
	models        map[*components.MeshRenderer]rl.Model
	frames        uint64
	closed        bool
}

func New(width, height int, opts Options) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rlnative: invalid size %dx%d", width, height)
	}
	if opts.Title == "" {
		opts.Title = "spincube"
	}
	if opts.TargetFPS <= 0 {
		opts.TargetFPS = 60
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	rl.InitWindow(int32(width), int32(height), opts.Title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("rlnative: window could not be opened")
	}
	rl.SetTargetFPS(int32(opts.TargetFPS))

	logging.Logger().Info("raylib window opened", "width", width, "height", height, "fps", opts.TargetFPS)

	return &Renderer{
		width:  int32(width),
		height: int32(height),
		opts:   opts,
		models: make(map[*components.MeshRenderer]rl.Model),
	}, nil
}

// Factory adapts New to render.Factory.
func Factory(opts Options) render.Factory {
	return func(width, height int) (render.Renderer, error) {
		return New(width, height, opts)
	}
}

func (r *Renderer) Size() (int, int) {
	return int(r.width), int(r.height)
}

func (r *Renderer) Render(scene *engine.Scene, cam *components.Camera) error {
	if r.closed || rl.WindowShouldClose() {
		return render.ErrSurfaceClosed
	}
	r.frames++

	rl.BeginDrawing()
	rl.ClearBackground(toColor(render.Background))

	rl.BeginMode3D(toCamera(cam))
	for _, d := range scene.Drawables() {
		if mesh, ok := d.(*components.MeshRenderer); ok {
			r.drawMesh(mesh)
		}
	}
	rl.EndMode3D()

	stop := false
	if r.opts.HUD {
		stop = r.drawHUD()
	}
	rl.EndDrawing()

	if stop {
		logging.Logger().Info("stop requested from HUD", "frames", r.frames)
		return render.ErrSurfaceClosed
	}
	return nil
}

func (r *Renderer) drawMesh(mesh *components.MeshRenderer) {
	model, ok := r.models[mesh]
	if !ok {
		var err error
		model, err = loadModel(mesh.Shape)
		if err != nil {
			logging.Logger().Warn("mesh skipped", "err", err)
			return
		}
		r.models[mesh] = model
	}

	t := mesh.GetGameObject().Transform
	model.Transform = rl.MatrixRotateXYZ(toVector3(t.Rotation))
	r.models[mesh] = model

	pos := t.Position
	rl.DrawModelEx(model, toVector3(pos), rl.Vector3{X: 0, Y: 1, Z: 0}, 0, toVector3(t.Scale), toColor(mesh.Color))
}

func (r *Renderer) drawHUD() bool {
	rl.DrawFPS(10, 10)
	gui.Label(rl.Rectangle{X: 10, Y: 34, Width: 200, Height: 20}, fmt.Sprintf("frame %d", r.frames))
	return gui.Button(rl.Rectangle{X: float32(r.width) - 90, Y: 10, Width: 80, Height: 28}, "Stop")
}

func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	for mesh, model := range r.models {
		rl.UnloadModel(model)
		delete(r.models, mesh)
	}
	rl.CloseWindow()
	return nil
}

func loadModel(shape geometry.Shape) (rl.Model, error) {
	switch shape.Kind {
	case geometry.KindBox:
		s := toVector3(shape.Size)
		return rl.LoadModelFromMesh(rl.GenMeshCube(s.X, s.Y, s.Z)), nil
	default:
		return rl.Model{}, fmt.Errorf("rlnative: unsupported mesh %q", shape.Kind)
	}
}
