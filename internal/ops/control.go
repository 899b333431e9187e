package ops

import (
	"github.com/tickdown/tickdown/internal/errors"
	"github.com/tickdown/tickdown/internal/state"
	"github.com/tickdown/tickdown/internal/timer"
)

// ControlOutput is the result of a single-timer control operation.
type ControlOutput struct {
	Timer timer.Timer `json:"timer"`
}

// Start sets a timer running. Starting an already-completed timer is
// refused here, at the caller boundary, so the reducer never sees it.
func Start(c *state.Container, id string) (*ControlOutput, error) {
	t, ok := find(c, id)
	if !ok {
		return nil, errors.NewNotFound(id)
	}
	if t.Status == timer.StatusCompleted {
		return nil, errors.NewInvalidRequest("timer is already completed; reset it to run again")
	}

	st := c.Dispatch(timer.StartTimer{ID: t.ID})
	updated, _ := st.Find(t.ID)
	return &ControlOutput{Timer: updated}, nil
}

// Pause pauses a timer.
func Pause(c *state.Container, id string) (*ControlOutput, error) {
	t, ok := find(c, id)
	if !ok {
		return nil, errors.NewNotFound(id)
	}

	st := c.Dispatch(timer.PauseTimer{ID: t.ID})
	updated, _ := st.Find(t.ID)
	return &ControlOutput{Timer: updated}, nil
}

// Reset pauses a timer and restores its full duration. A completed timer
// may be reset; that re-opens it.
func Reset(c *state.Container, id string) (*ControlOutput, error) {
	t, ok := find(c, id)
	if !ok {
		return nil, errors.NewNotFound(id)
	}

	st := c.Dispatch(timer.ResetTimer{ID: t.ID})
	updated, _ := st.Find(t.ID)
	return &ControlOutput{Timer: updated}, nil
}

// Complete finishes a timer immediately and archives it. Guarded so a
// second completion of the same timer cannot append a second history
// entry.
func Complete(c *state.Container, id string) (*ControlOutput, error) {
	t, ok := find(c, id)
	if !ok {
		return nil, errors.NewNotFound(id)
	}
	if t.Status == timer.StatusCompleted {
		return nil, errors.NewInvalidRequest("timer is already completed")
	}

	st := c.Dispatch(timer.CompleteTimer{ID: t.ID})
	updated, _ := st.Find(t.ID)
	return &ControlOutput{Timer: updated}, nil
}

// DeleteOutput is the result of the Delete operation.
type DeleteOutput struct {
	ID string `json:"id"`
}

// Delete removes a timer from the live set. History is untouched.
func Delete(c *state.Container, id string) (*DeleteOutput, error) {
	t, ok := find(c, id)
	if !ok {
		return nil, errors.NewNotFound(id)
	}

	c.Dispatch(timer.DeleteTimer{ID: t.ID})
	return &DeleteOutput{ID: t.ID}, nil
}
