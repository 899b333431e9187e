package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Status is the lifecycle state of a timer.
type Status string

const (
	StatusPaused    Status = "paused"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPaused, StatusRunning, StatusCompleted:
		return true
	}
	return false
}

// Timer is a named, categorized countdown.
// ID, Name, Category, Duration, HalfwayAlert and CreatedAt are fixed at
// creation; only Status and RemainingTime change afterwards.
type Timer struct {
	// ID is a ULID that uniquely identifies this timer
	ID string `json:"id"`

	// Name is the display name (non-empty, validated at the ops boundary)
	Name string `json:"name"`

	// Category groups timers for bulk start/pause/reset (non-empty, case-sensitive)
	Category string `json:"category"`

	// Duration is the total countdown length in seconds (> 0)
	Duration int `json:"duration"`

	// RemainingTime is the seconds left, in [0, Duration]
	RemainingTime int `json:"remainingTime"`

	// Status is paused, running or completed
	Status Status `json:"status"`

	// HalfwayAlert opts this timer into a one-shot notification at Duration/2
	HalfwayAlert bool `json:"halfwayAlert"`

	// CreatedAt is when the timer was created
	CreatedAt time.Time `json:"createdAt"`
}

// HistoryEntry is an immutable archival snapshot of a timer, created once
// when it completes. Entries are never merged back into the live set.
type HistoryEntry struct {
	Timer

	// CompletedAt is when the timer finished
	CompletedAt time.Time `json:"completedAt"`
}

// New builds a paused timer with a fresh ID and full remaining time.
// Callers validate name, category and duration before calling.
func New(name, category string, duration int, halfwayAlert bool) Timer {
	return Timer{
		ID:            NewID(),
		Name:          strings.TrimSpace(name),
		Category:      strings.TrimSpace(category),
		Duration:      duration,
		RemainingTime: duration,
		Status:        StatusPaused,
		HalfwayAlert:  halfwayAlert,
		CreatedAt:     time.Now(),
	}
}

// NewID returns a fresh ULID string. ULIDs are lexically sortable by
// creation time, which keeps id ordering aligned with insertion order.
func NewID() string {
	return ulid.Make().String()
}

// FormatDuration renders a second count as "1h 2m 3s", omitting zero units.
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "0s"
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	var b strings.Builder
	if hours > 0 {
		fmt.Fprintf(&b, "%dh ", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dm ", minutes)
	}
	if secs > 0 || b.Len() == 0 {
		fmt.Fprintf(&b, "%ds", secs)
	}
	return strings.TrimSpace(b.String())
}

// FormatClock renders a second count as "MM:SS" or "H:MM:SS" for the live view.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
