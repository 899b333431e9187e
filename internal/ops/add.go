package ops

import (
	"strings"

	"github.com/tickdown/tickdown/internal/errors"
	"github.com/tickdown/tickdown/internal/state"
	"github.com/tickdown/tickdown/internal/timer"
)

// AddInput contains parameters for the Add operation.
type AddInput struct {
	Name         string // required, non-empty after trimming
	Category     string // required, non-empty after trimming
	Duration     int    // required, seconds > 0
	HalfwayAlert bool
}

// AddOutput contains the result of the Add operation.
type AddOutput struct {
	Timer timer.Timer `json:"timer"`
}

// Add validates the input and appends a new paused timer. Validation
// failures surface before anything is dispatched.
func Add(c *state.Container, input AddInput) (*AddOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.NewInvalidRequest("name must not be empty")
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, errors.NewInvalidRequest("category must not be empty")
	}
	if input.Duration <= 0 {
		return nil, errors.NewInvalidRequest("duration must be a positive number of seconds")
	}

	t := timer.New(name, category, input.Duration, input.HalfwayAlert)
	c.Dispatch(timer.AddTimer{Timer: t})

	return &AddOutput{Timer: t}, nil
}
