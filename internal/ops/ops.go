// Package ops is the boundary operation layer shared by the CLI, TUI,
// web and MCP surfaces. Operations validate their inputs, dispatch
// through the state container, and return typed outputs; the reducer
// itself never validates.
package ops

import (
	"strings"

	"github.com/tickdown/tickdown/internal/state"
	"github.com/tickdown/tickdown/internal/timer"
)

// find returns the timer with the given id from the current snapshot.
func find(c *state.Container, id string) (timer.Timer, bool) {
	return c.Snapshot().Find(strings.TrimSpace(id))
}
