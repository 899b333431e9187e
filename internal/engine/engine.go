// Package engine drives countdown advancement: one tick per second for
// every running timer, with halfway and completion detection.
package engine

import (
	"sync"
	"time"

	"github.com/tickdown/tickdown/internal/state"
	"github.com/tickdown/tickdown/internal/timer"
)

// Engine advances all running timers at a fixed cadence while the owning
// view is active. It never fails: a stale or already-completed timer in a
// snapshot simply no-ops in the reducer on the next tick.
type Engine struct {
	container *state.Container
	interval  time.Duration

	// OnHalfway fires when an opted-in timer's pre-decrement remaining
	// time equals Duration/2. OnCompleted fires with the pre-completion
	// timer when a decrement reaches zero. Both are fire-and-forget and
	// may be nil.
	OnHalfway   func(timer.Timer)
	OnCompleted func(timer.Timer)

	mu      sync.Mutex
	quit    chan struct{}
	done    chan struct{}
	running bool
}

// New creates an engine ticking at the given interval (1s in production;
// tests shrink it).
func New(c *state.Container, interval time.Duration) *Engine {
	if interval <= 0 {
		interval = time.Second
	}
	return &Engine{container: c, interval: interval}
}

// Start launches the tick loop. Ticks are strictly sequential: the loop
// runs on a single goroutine, so tick N+1 never begins before tick N's
// dispatches have been applied. Start on a running engine is a no-op.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return
	}
	e.running = true
	e.quit = make(chan struct{})
	e.done = make(chan struct{})

	go func(quit, done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()
		for {
			select {
			case <-quit:
				return
			case <-ticker.C:
				e.Advance()
			}
		}
	}(e.quit, e.done)
}

// Stop tears the loop down and blocks until it has exited; no partial
// tick is applied after Stop returns. Idempotent.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	close(e.quit)
	done := e.done
	e.mu.Unlock()

	<-done
}

// Advance applies a single tick to the current snapshot, processing
// timers in collection order. Exported so tests and the terminal view can
// drive time deterministically.
func (e *Engine) Advance() {
	snap := e.container.Snapshot()
	for _, t := range snap.Timers {
		if t.Status != timer.StatusRunning || t.RemainingTime <= 0 {
			continue
		}

		e.container.Dispatch(timer.UpdateRemainingTime{
			ID:            t.ID,
			RemainingTime: t.RemainingTime - 1,
		})

		// Exact equality against the halfway boundary: fires once
		// under normal cadence, skipped entirely if ticks are ever
		// missed. Preserved as-is rather than upgraded to a
		// threshold crossing.
		if t.HalfwayAlert && t.RemainingTime == t.Duration/2 {
			if e.OnHalfway != nil {
				e.OnHalfway(t)
			}
		}

		if t.RemainingTime == 1 {
			e.container.Dispatch(timer.CompleteTimer{ID: t.ID})
			if e.OnCompleted != nil {
				e.OnCompleted(t)
			}
		}
	}
}
