// Package soft renders scenes on the CPU with gogpu/gg. It needs no window
// and can write every frame to disk as PNG.
package soft

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/gg"

	"spincube/internal/components"
	"spincube/internal/engine"
	"spincube/internal/logging"
	"spincube/internal/render"
)

type Options struct {
	// OutDir, when set, receives frame-000001.png, frame-000002.png, ...
	OutDir string
	// Every writes only every n-th frame. Zero or one writes all.
	Every uint64
}

type Renderer struct {
	width, height int
	opts          Options

	dc *gg.Context

	mu     sync.RWMutex
	frame  *image.RGBA
	frames uint64
}

func New(width, height int, opts Options) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("soft: invalid size %dx%d", width, height)
	}
	if opts.OutDir != "" {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return nil, fmt.Errorf("soft: create output dir: %w", err)
		}
	}
	return &Renderer{
		width:  width,
		height: height,
		opts:   opts,
		dc:     gg.NewContext(width, height),
	}, nil
}

// Factory adapts New to render.Factory.
func Factory(opts Options) render.Factory {
	return func(width, height int) (render.Renderer, error) {
		return New(width, height, opts)
	}
}

func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

func (r *Renderer) Render(scene *engine.Scene, cam *components.Camera) error {
	if r.dc == nil {
		return render.ErrSurfaceClosed
	}
	r.dc.ClearWithColor(gg.FromColor(render.Background))

	for _, p := range render.Project(scene, cam, r.width, r.height) {
		r.dc.NewSubPath()
		for i, pt := range p.Points {
			if i == 0 {
				r.dc.MoveTo(pt.X, pt.Y)
			} else {
				r.dc.LineTo(pt.X, pt.Y)
			}
		}
		r.dc.ClosePath()
		r.dc.SetColor(p.Color)
		if err := r.dc.Fill(); err != nil {
			return fmt.Errorf("soft: fill: %w", err)
		}
	}

	img, ok := r.dc.Image().(*image.RGBA)
	if !ok {
		return fmt.Errorf("soft: unexpected image type %T", r.dc.Image())
	}
	r.mu.Lock()
	r.frame = img
	r.frames++
	n := r.frames
	r.mu.Unlock()

	return r.writeFrame(n)
}

func (r *Renderer) writeFrame(n uint64) error {
	if r.opts.OutDir == "" {
		return nil
	}
	if r.opts.Every > 1 && n%r.opts.Every != 0 {
		return nil
	}
	path := filepath.Join(r.opts.OutDir, fmt.Sprintf("frame-%06d.png", n))
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("soft: write %s: %w", path, err)
	}
	logging.Logger().Debug("frame written", "path", path)
	return nil
}

// Frame returns the most recent frame, or nil before the first Render.
// The image is not modified after it is returned.
func (r *Renderer) Frame() image.Image {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.frame == nil {
		return nil
	}
	return r.frame
}

// Frames counts the frames rendered so far. It is safe to call from any
// goroutine.
func (r *Renderer) Frames() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frames
}

func (r *Renderer) Close() error {
	if r.dc == nil {
		return nil
	}
	err := r.dc.Close()
	r.dc = nil
	return err
}
