package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/tickdown/tickdown/internal/timer"
)

var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("42")).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("255")).
		Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("238")).
		Bold(true)

	runningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	pausedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	completedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	chipStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("39"))

	noticeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	dimmedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	statusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("250"))
)

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	filter := "all"
	if m.category != "" {
		filter = m.category
	}
	header := fmt.Sprintf(" tickdown │ %d timer(s) │ filter: %s │ archived: %d ",
		len(m.timers), filter, m.archived)
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n\n")

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(" " + m.notice))
		b.WriteString("\n\n")
	}

	if len(m.timers) == 0 {
		b.WriteString(dimmedStyle.Render("  No timers. Add one with `tickdown add`."))
		b.WriteString("\n")
	}

	for i, t := range m.timers {
		b.WriteString(m.renderRow(i, t))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusBarStyle.Render(
		" j/k move · s start · p pause · r reset · c complete · d delete · S/P/R category · tab filter · q quit "))

	return b.String()
}

// renderRow renders one timer line.
func (m Model) renderRow(i int, t timer.Timer) string {
	clock := timer.FormatClock(t.RemainingTime)

	var statusStyle lipgloss.Style
	switch t.Status {
	case timer.StatusRunning:
		statusStyle = runningStyle
	case timer.StatusCompleted:
		statusStyle = completedStyle
	default:
		statusStyle = pausedStyle
	}

	line := fmt.Sprintf("  %s  %-24s %s  %s",
		statusStyle.Render(fmt.Sprintf("%-9s", t.Status)),
		truncate(t.Name, 24),
		statusStyle.Render(clock),
		chipStyle.Render(t.Category),
	)

	if i == m.selectedRow {
		detail := dimmedStyle.Render(fmt.Sprintf("  %s · created %s",
			timer.FormatDuration(t.Duration), humanize.Time(t.CreatedAt)))
		return selectedStyle.Render("▸"+line[1:]) + detail
	}
	return line
}

// truncate shortens a string to max runes with an ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
