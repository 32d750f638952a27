// Package host models the page-like container a scene is mounted into:
// a root whose content can be replaced, and surfaces looked up by id.
package host

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrNotFound        = errors.New("host: element not found")
	ErrAlreadyAttached = errors.New("host: surface already has an output attached")
	ErrInvalidSize     = errors.New("host: invalid surface size")
)

// Output is whatever a renderer presents into a surface.
type Output interface {
	Size() (width, height int)
}

// Surface is a fixed-size drawing area.
type Surface struct {
	ID     string
	Width  int
	Height int

	mu     sync.Mutex
	output Output
}

func NewSurface(id string, width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Surface{ID: id, Width: width, Height: height}, nil
}

// Attach binds out to the surface. A surface holds at most one output.
func (s *Surface) Attach(out Output) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.output != nil {
		return fmt.Errorf("%w: %s", ErrAlreadyAttached, s.ID)
	}
	s.output = out
	return nil
}

func (s *Surface) Output() Output {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.output
}

// Aspect returns width / height.
func (s *Surface) Aspect() float64 {
	return float64(s.Width) / float64(s.Height)
}

// Root is a container whose children are replaced wholesale.
type Root struct {
	mu       sync.RWMutex
	children []*Surface
}

func NewRoot() *Root {
	return &Root{}
}

// ReplaceContent drops the current children and installs surfaces in their place.
func (r *Root) ReplaceContent(surfaces ...*Surface) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.children = append([]*Surface(nil), surfaces...)
}

func (r *Root) ElementByID(id string) (*Surface, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.children {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
}

func (r *Root) Children() []*Surface {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Surface(nil), r.children...)
}
