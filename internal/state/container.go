// Package state owns the single shared TimerState aggregate. All mutation
// funnels through Dispatch, which serializes reducer applications and
// notifies listeners in dispatch order; there are no other mutation paths.
package state

import (
	"sync"

	"github.com/tickdown/tickdown/internal/timer"
)

// Listener observes each post-dispatch state. Listeners run while the
// dispatch lock is held, so they must be cheap and must not dispatch
// re-entrantly; hand off to a goroutine for anything slow.
type Listener func(timer.State)

// Container holds the authoritative TimerState for the process. Created
// once at startup (loading, empty) and torn down at exit; injected into
// the engine, the ops layer and the synchronizer rather than reached
// through globals.
type Container struct {
	mu        sync.Mutex
	state     timer.State
	listeners []Listener
}

// New returns a container in the initial loading state.
func New() *Container {
	return &Container{state: timer.Initial()}
}

// Dispatch applies the reducer to the current state and returns the new
// state. Dispatches are applied strictly in the order the lock is won;
// concurrent dispatches are last-writer-wins on the fields they touch.
func (c *Container) Dispatch(a timer.Action) timer.State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = timer.Reduce(c.state, a)
	for _, fn := range c.listeners {
		fn(c.state)
	}
	return c.state
}

// DispatchDiff applies the reducer like Dispatch, but also returns the
// state the action was applied to. Both states are captured under the
// same lock, so no other dispatch can land between them.
func (c *Container) DispatchDiff(a timer.Action) (before, after timer.State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	before = c.state
	c.state = timer.Reduce(c.state, a)
	for _, fn := range c.listeners {
		fn(c.state)
	}
	return before, c.state
}

// Snapshot returns the current state. The reducer never mutates slices in
// place, so the returned value is safe to read without copying.
func (c *Container) Snapshot() timer.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers a listener for every subsequent dispatch.
func (c *Container) Subscribe(fn Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}
