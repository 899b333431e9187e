// Package tui is the live terminal view. It owns the tick scheduler for
// its lifetime: timers only count down while a long-running surface is
// open, and the TUI is the interactive one.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tickdown/tickdown/internal/config"
	"github.com/tickdown/tickdown/internal/engine"
	"github.com/tickdown/tickdown/internal/state"
	"github.com/tickdown/tickdown/internal/timer"
)

// noticeTTL is how long alert banners stay on screen.
const noticeTTL = 4 * time.Second

// Model is the TUI application model.
type Model struct {
	container *state.Container

	// Data, refreshed from the container on every tick
	timers   []timer.Timer
	archived int

	// UI state
	width       int
	height      int
	selectedRow int
	category    string // active filter, "" = all
	categories  []string

	// Alert banner
	notice        string
	noticeExpires time.Time
}

// NewModel creates a new TUI model over the shared container.
func NewModel(container *state.Container) Model {
	m := Model{container: container}
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// TickMsg triggers a refresh.
type TickMsg time.Time

// HalfwayMsg is sent by the engine when a timer passes its midpoint.
type HalfwayMsg struct {
	Timer timer.Timer
}

// CompletedMsg is sent by the engine when a timer finishes.
type CompletedMsg struct {
	Timer timer.Timer
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// refresh re-reads the container snapshot into the model.
func (m *Model) refresh() {
	snap := m.container.Snapshot()
	m.archived = len(snap.History)

	seen := make(map[string]bool)
	m.categories = m.categories[:0]
	for _, t := range snap.Timers {
		if !seen[t.Category] {
			seen[t.Category] = true
			m.categories = append(m.categories, t.Category)
		}
	}

	m.timers = m.timers[:0]
	for _, t := range snap.Timers {
		if m.category == "" || t.Category == m.category {
			m.timers = append(m.timers, t)
		}
	}

	if m.selectedRow >= len(m.timers) {
		m.selectedRow = len(m.timers) - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// selected returns the timer under the cursor.
func (m *Model) selected() (timer.Timer, bool) {
	if len(m.timers) == 0 || m.selectedRow >= len(m.timers) {
		return timer.Timer{}, false
	}
	return m.timers[m.selectedRow], true
}

// setNotice shows a transient banner.
func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeExpires = time.Now().Add(noticeTTL)
}

// Run wires the tick scheduler to a bubbletea program and blocks until
// the user quits. Engine hooks forward alerts into the program's message
// loop; p.Send is safe from the engine goroutine.
func Run(container *state.Container, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(container), tea.WithAltScreen())

	eng := engine.New(container, cfg.TickInterval())
	eng.OnHalfway = func(t timer.Timer) { p.Send(HalfwayMsg{Timer: t}) }
	eng.OnCompleted = func(t timer.Timer) { p.Send(CompletedMsg{Timer: t}) }
	eng.Start()
	defer eng.Stop()

	_, err := p.Run()
	return err
}
