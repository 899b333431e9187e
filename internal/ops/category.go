package ops

import (
	"strings"

	"github.com/tickdown/tickdown/internal/errors"
	"github.com/tickdown/tickdown/internal/state"
	"github.com/tickdown/tickdown/internal/timer"
)

// CategoryOutput is the result of a bulk category operation.
type CategoryOutput struct {
	Category string `json:"category"`

	// Affected counts the timers whose state actually changed.
	Affected int `json:"affected"`
}

// StartCategory starts every non-completed timer in the category.
// Category matching is exact and case-sensitive.
func StartCategory(c *state.Container, category string) (*CategoryOutput, error) {
	category, err := cleanCategory(category)
	if err != nil {
		return nil, err
	}

	before, after := c.DispatchDiff(timer.StartCategoryTimers{Category: category})
	return &CategoryOutput{Category: category, Affected: changed(before, after)}, nil
}

// PauseCategory pauses every running timer in the category.
func PauseCategory(c *state.Container, category string) (*CategoryOutput, error) {
	category, err := cleanCategory(category)
	if err != nil {
		return nil, err
	}

	before, after := c.DispatchDiff(timer.PauseCategoryTimers{Category: category})
	return &CategoryOutput{Category: category, Affected: changed(before, after)}, nil
}

// ResetCategory resets every timer in the category to paused at full
// duration.
func ResetCategory(c *state.Container, category string) (*CategoryOutput, error) {
	category, err := cleanCategory(category)
	if err != nil {
		return nil, err
	}

	before, after := c.DispatchDiff(timer.ResetCategoryTimers{Category: category})
	return &CategoryOutput{Category: category, Affected: changed(before, after)}, nil
}

func cleanCategory(category string) (string, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return "", errors.NewInvalidRequest("category must not be empty")
	}
	return category, nil
}

// changed counts timers whose status or remaining time differ between
// two snapshots, matched by id.
func changed(before, after timer.State) int {
	prev := make(map[string]timer.Timer, len(before.Timers))
	for _, t := range before.Timers {
		prev[t.ID] = t
	}
	n := 0
	for _, a := range after.Timers {
		b, ok := prev[a.ID]
		if !ok {
			continue
		}
		if b.Status != a.Status || b.RemainingTime != a.RemainingTime {
			n++
		}
	}
	return n
}
