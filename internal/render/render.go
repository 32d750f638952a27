// Package render defines what the world needs from a backend that draws a
// scene through a camera onto a host surface.
package render

import (
	"errors"
	"image"
	"image/color"

	"spincube/internal/components"
	"spincube/internal/engine"
	"spincube/internal/host"
)

// ErrSurfaceClosed is returned by Render once the output can no longer be
// drawn to, e.g. the window was closed. The world treats it as a clean stop.
var ErrSurfaceClosed = errors.New("render: surface closed")

// Renderer draws a scene through a camera. Render and Close are called from
// the loop goroutine only.
type Renderer interface {
	host.Output
	Render(scene *engine.Scene, cam *components.Camera) error
	Close() error
}

// Factory builds a renderer for a surface of the given size.
type Factory func(width, height int) (Renderer, error)

// FrameSource is implemented by renderers that keep the last frame in memory.
type FrameSource interface {
	Frame() image.Image
}

// Background is the clear colour shared by all backends.
var Background = color.RGBA{A: 0xff}
