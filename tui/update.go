package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tickdown/tickdown/internal/errors"
	"github.com/tickdown/tickdown/internal/ops"
	"github.com/tickdown/tickdown/internal/state"
)

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "j", "down":
			if m.selectedRow < len(m.timers)-1 {
				m.selectedRow++
			}
		case "k", "up":
			if m.selectedRow > 0 {
				m.selectedRow--
			}

		case "tab":
			m.cycleFilter()
			m.refresh()

		case "s":
			m.controlSelected(ops.Start, "started")
		case "p":
			m.controlSelected(ops.Pause, "paused")
		case "r":
			m.controlSelected(ops.Reset, "reset")
		case "c":
			m.controlSelected(ops.Complete, "completed")
		case "d":
			if t, ok := m.selected(); ok {
				if _, err := ops.Delete(m.container, t.ID); err != nil {
					m.setNotice(errText(err))
				} else {
					m.setNotice(fmt.Sprintf("deleted %q", t.Name))
				}
				m.refresh()
			}

		case "S":
			m.bulkSelected(ops.StartCategory, "started")
		case "P":
			m.bulkSelected(ops.PauseCategory, "paused")
		case "R":
			m.bulkSelected(ops.ResetCategory, "reset")
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case TickMsg:
		m.refresh()
		if m.notice != "" && time.Now().After(m.noticeExpires) {
			m.notice = ""
		}
		return m, tickCmd()

	case HalfwayMsg:
		m.setNotice(fmt.Sprintf("⏱ %q is halfway done", msg.Timer.Name))
		m.refresh()

	case CompletedMsg:
		m.setNotice(fmt.Sprintf("✔ %q finished", msg.Timer.Name))
		m.refresh()
	}

	return m, nil
}

// controlSelected applies a single-timer operation to the cursor row.
func (m *Model) controlSelected(fn func(c *state.Container, id string) (*ops.ControlOutput, error), verb string) {
	t, ok := m.selected()
	if !ok {
		return
	}
	if _, err := fn(m.container, t.ID); err != nil {
		m.setNotice(errText(err))
	} else {
		m.setNotice(fmt.Sprintf("%s %q", verb, t.Name))
	}
	m.refresh()
}

// bulkSelected applies a category operation to the cursor row's category.
func (m *Model) bulkSelected(fn func(c *state.Container, category string) (*ops.CategoryOutput, error), verb string) {
	t, ok := m.selected()
	if !ok {
		return
	}
	out, err := fn(m.container, t.Category)
	if err != nil {
		m.setNotice(errText(err))
	} else {
		m.setNotice(fmt.Sprintf("%s %d timer(s) in %q", verb, out.Affected, t.Category))
	}
	m.refresh()
}

// cycleFilter advances the category filter: all → each category → all.
func (m *Model) cycleFilter() {
	if len(m.categories) == 0 {
		m.category = ""
		return
	}
	if m.category == "" {
		m.category = m.categories[0]
		return
	}
	for i, c := range m.categories {
		if c == m.category {
			if i+1 < len(m.categories) {
				m.category = m.categories[i+1]
			} else {
				m.category = ""
			}
			return
		}
	}
	m.category = ""
}

// errText formats an operation error for the banner.
func errText(err error) string {
	if tickErr, ok := err.(*errors.TickError); ok {
		return tickErr.Message
	}
	return err.Error()
}
