package ops

import (
	"strings"

	"github.com/tickdown/tickdown/internal/state"
	"github.com/tickdown/tickdown/internal/timer"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Category string // optional; exact match filter
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Timers []timer.Timer `json:"timers"`
	Total  int           `json:"total"`
}

// List returns the live timers in creation order, optionally filtered to
// one category.
func List(c *state.Container, input ListInput) (*ListOutput, error) {
	snap := c.Snapshot()

	category := strings.TrimSpace(input.Category)
	timers := snap.Timers
	if category != "" {
		timers = nil
		for _, t := range snap.Timers {
			if t.Category == category {
				timers = append(timers, t)
			}
		}
	}
	if timers == nil {
		timers = []timer.Timer{}
	}

	return &ListOutput{Timers: timers, Total: len(timers)}, nil
}

// Categories returns the distinct live-timer categories in first-seen
// order, for filter chips and bulk-action targets.
func Categories(c *state.Container) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range c.Snapshot().Timers {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}
