// Package animation drives per-frame work from a Scheduler on a single
// goroutine, with an explicit handle to stop it.
package animation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"spincube/internal/logging"
)

const DefaultFPS = 60

// ErrStop ends a loop without reporting an error.
var ErrStop = errors.New("animation: stop")

// TickFunc runs one frame. tick counts from 1.
type TickFunc func(tick uint64, deltaTime float64) error

type Loop struct {
	name  string
	sched Scheduler
	fn    TickFunc
	max   uint64
	ticks atomic.Uint64
}

func New(name string, sched Scheduler, fn TickFunc) *Loop {
	return &Loop{name: name, sched: sched, fn: fn}
}

// Limit stops the loop cleanly after n ticks. Zero means no limit.
// Call it before Run or Start.
func (l *Loop) Limit(n uint64) *Loop {
	l.max = n
	return l
}

func (l *Loop) Ticks() uint64 {
	return l.ticks.Load()
}

// Run executes frames on the calling goroutine until ctx is done, the tick
// limit is reached, the scheduler or tick returns ErrStop, or tick fails.
// The first frame runs at once; later frames wait on the scheduler.
// Only failures are returned: ErrStop and the end of ctx are clean stops.
func (l *Loop) Run(ctx context.Context) error {
	log := logging.Logger().With("loop", l.name)
	log.Info("loop started")

	last := time.Now()
	err := func() error {
		for {
			n := l.ticks.Load()
			if l.max > 0 && n >= l.max {
				return ErrStop
			}
			if n > 0 {
				if err := l.sched.Wait(ctx); err != nil {
					return err
				}
			} else if err := ctx.Err(); err != nil {
				return err
			}
			now := time.Now()
			dt := now.Sub(last).Seconds()
			last = now

			n = l.ticks.Add(1)
			if err := l.fn(n, dt); err != nil {
				return fmt.Errorf("tick %d: %w", n, err)
			}
		}
	}()

	if errors.Is(err, ErrStop) || (ctx.Err() != nil && errors.Is(err, ctx.Err())) {
		log.Info("loop stopped", "ticks", l.Ticks())
		return nil
	}
	log.Warn("loop failed", "ticks", l.Ticks(), "err", err)
	return err
}

// Start runs the loop on a new goroutine.
func (l *Loop) Start(ctx context.Context) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{loop: l, cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(h.done)
		defer cancel()
		h.err = l.Run(ctx)
	}()
	return h
}

// Handle controls a loop started with Start.
type Handle struct {
	loop     *Loop
	cancel   context.CancelFunc
	done     chan struct{}
	err      error
	stopOnce sync.Once
}

// Stop asks the loop to exit after the frame in progress. It does not wait.
func (h *Handle) Stop() {
	h.stopOnce.Do(h.cancel)
}

func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the loop exits and returns its error.
func (h *Handle) Wait() error {
	<-h.done
	return h.err
}

func (h *Handle) Ticks() uint64 {
	return h.loop.Ticks()
}
