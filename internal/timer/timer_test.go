package timer

import "testing"

func TestNew_Defaults(t *testing.T) {
	tm := New("  Morning run  ", " Fitness ", 1800, true)

	if tm.ID == "" {
		t.Error("ID not assigned")
	}
	if tm.Name != "Morning run" {
		t.Errorf("Name = %q, want trimmed", tm.Name)
	}
	if tm.Category != "Fitness" {
		t.Errorf("Category = %q, want trimmed", tm.Category)
	}
	if tm.Status != StatusPaused {
		t.Errorf("Status = %s, want paused", tm.Status)
	}
	if tm.RemainingTime != tm.Duration || tm.Duration != 1800 {
		t.Errorf("Duration/Remaining = %d/%d, want 1800/1800", tm.Duration, tm.RemainingTime)
	}
	if !tm.HalfwayAlert {
		t.Error("HalfwayAlert = false, want true")
	}
	if tm.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{StatusPaused, StatusRunning, StatusCompleted} {
		if !s.Valid() {
			t.Errorf("%s.Valid() = false, want true", s)
		}
	}
	for _, s := range []Status{"", "done", "PAUSED"} {
		if s.Valid() {
			t.Errorf("%q.Valid() = true, want false", s)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0s"},
		{-5, "0s"},
		{45, "45s"},
		{60, "1m"},
		{90, "1m 30s"},
		{3600, "1h"},
		{3661, "1h 1m 1s"},
		{7200, "2h"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{-1, "00:00"},
		{59, "00:59"},
		{61, "01:01"},
		{600, "10:00"},
		{3661, "1:01:01"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
