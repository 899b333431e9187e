package ops

import (
	"strings"

	"github.com/tickdown/tickdown/internal/history"
	"github.com/tickdown/tickdown/internal/state"
)

// HistoryInput contains parameters for the History operation.
type HistoryInput struct {
	Category string // optional; "all" or empty means no filter
}

// HistoryOutput contains the derived history view: available categories,
// day groups for the selected filter, and the total matching entries.
type HistoryOutput struct {
	Categories []string           `json:"categories"`
	Groups     []history.DayGroup `json:"groups"`
	Total      int                `json:"total"`
}

// History derives the grouped, filtered history view. Recomputed on
// every call; the underlying collection is append-only so there is
// nothing worth caching at this scale.
func History(c *state.Container, input HistoryInput) (*HistoryOutput, error) {
	snap := c.Snapshot()

	filtered := history.Filter(snap.History, strings.TrimSpace(input.Category))
	return &HistoryOutput{
		Categories: history.Categories(snap.History),
		Groups:     history.GroupByDay(filtered),
		Total:      len(filtered),
	}, nil
}
