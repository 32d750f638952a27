package animation

import (
	"context"
	"time"
)

// Scheduler paces the loop: Wait blocks until the next frame is due.
// Returning ErrStop ends the loop cleanly.
type Scheduler interface {
	Wait(ctx context.Context) error
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(ctx context.Context) error

func (f SchedulerFunc) Wait(ctx context.Context) error { return f(ctx) }

// Interval ticks at a fixed rate. Frames that fall behind are dropped,
// matching time.Ticker.
type Interval struct {
	ticker *time.Ticker
}

// NewInterval returns a scheduler firing fps times per second.
// Call Close when done with it.
func NewInterval(fps int) *Interval {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Interval{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

func (i *Interval) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-i.ticker.C:
		return nil
	}
}

func (i *Interval) Close() {
	i.ticker.Stop()
}

// Paced never waits. Use it when the renderer itself blocks until the
// next refresh (vsync or a target FPS inside the backend).
type Paced struct{}

func (Paced) Wait(ctx context.Context) error {
	return ctx.Err()
}

// Manual releases one frame per receive on C.
type Manual struct {
	C chan struct{}
}

func NewManual() *Manual {
	return &Manual{C: make(chan struct{})}
}

// Step blocks until the loop has taken a frame.
func (m *Manual) Step() {
	m.C <- struct{}{}
}

func (m *Manual) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-m.C:
		return nil
	}
}
