// Package ebitenwin shows software-rendered frames in an ebiten window.
//
// Rendering happens on the loop goroutine through the soft renderer; the
// window only uploads the latest finished frame on each draw. Run must be
// called from the main goroutine.
package ebitenwin

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"spincube/internal/components"
	"spincube/internal/engine"
	"spincube/internal/logging"
	"spincube/internal/render"
	"spincube/internal/render/soft"
)

type Options struct {
	Title string
	TPS   int
	Soft  soft.Options
}

// Window is a render.Renderer backed by soft.Renderer and presented by ebiten.
type Window struct {
	soft   *soft.Renderer
	opts   Options
	closed atomic.Bool

	mu    sync.Mutex
	frame *image.RGBA
	dirty bool
}

func New(width, height int, opts Options) (*Window, error) {
	r, err := soft.New(width, height, opts.Soft)
	if err != nil {
		return nil, fmt.Errorf("ebitenwin: %w", err)
	}
	if opts.Title == "" {
		opts.Title = "spincube"
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	return &Window{soft: r, opts: opts}, nil
}

// Factory adapts New to render.Factory.
func Factory(opts Options) render.Factory {
	return func(width, height int) (render.Renderer, error) {
		return New(width, height, opts)
	}
}

func (w *Window) Size() (int, int) {
	return w.soft.Size()
}

func (w *Window) Render(scene *engine.Scene, cam *components.Camera) error {
	if w.closed.Load() {
		return render.ErrSurfaceClosed
	}
	if err := w.soft.Render(scene, cam); err != nil {
		return err
	}
	src := w.soft.Frame()
	if src == nil {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.frame == nil {
		w.frame = image.NewRGBA(src.Bounds())
	}
	draw.Draw(w.frame, w.frame.Bounds(), src, src.Bounds().Min, draw.Src)
	w.dirty = true
	return nil
}

// Run opens the window and blocks until it is closed or ctx is done.
// Once Run returns, Render reports render.ErrSurfaceClosed.
func (w *Window) Run(ctx context.Context) error {
	defer w.closed.Store(true)

	width, height := w.Size()
	ebiten.SetWindowTitle(w.opts.Title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(w.opts.TPS)

	logging.Logger().Info("ebiten window opened", "width", width, "height", height)
	err := ebiten.RunGame(&game{w: w, ctx: ctx})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (w *Window) Close() error {
	w.closed.Store(true)
	return w.soft.Close()
}

type game struct {
	w   *Window
	ctx context.Context
	img *ebiten.Image
}

func (g *game) Update() error {
	if g.w.closed.Load() || g.ctx.Err() != nil {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.w.mu.Lock()
	defer g.w.mu.Unlock()
	if g.w.frame == nil {
		return
	}
	if g.img == nil {
		b := g.w.frame.Bounds()
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	if g.w.dirty {
		g.img.WritePixels(g.w.frame.Pix)
		g.w.dirty = false
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w.Size()
}
