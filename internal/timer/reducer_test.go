package timer

import (
	"encoding/json"
	"testing"
	"time"
)

// mustHold fails the test if the completion invariant is broken for any
// timer: completed <=> zero remaining time.
func mustHold(t *testing.T, s State) {
	t.Helper()
	for _, tm := range s.Timers {
		completed := tm.Status == StatusCompleted
		zero := tm.RemainingTime == 0
		if completed != zero {
			t.Fatalf("invariant broken for %s: status=%s remaining=%d", tm.ID, tm.Status, tm.RemainingTime)
		}
	}
}

func testTimer(id, name, category string, duration int) Timer {
	return Timer{
		ID:            id,
		Name:          name,
		Category:      category,
		Duration:      duration,
		RemainingTime: duration,
		Status:        StatusPaused,
		CreatedAt:     time.Now(),
	}
}

func TestReduce_Initialize(t *testing.T) {
	s := Initial()
	if !s.IsLoading {
		t.Fatal("initial state should be loading")
	}

	timers := []Timer{testTimer("t1", "Tea", "Kitchen", 180)}
	entries := []HistoryEntry{{Timer: testTimer("h1", "Eggs", "Kitchen", 300), CompletedAt: time.Now()}}

	s = Reduce(s, Initialize{Timers: timers, History: entries})

	if s.IsLoading {
		t.Error("IsLoading = true after Initialize, want false")
	}
	if len(s.Timers) != 1 || s.Timers[0].ID != "t1" {
		t.Errorf("Timers = %+v, want the loaded timer", s.Timers)
	}
	if len(s.History) != 1 || s.History[0].ID != "h1" {
		t.Errorf("History = %+v, want the loaded entry", s.History)
	}
}

func TestReduce_AddTimer_AppendsInOrder(t *testing.T) {
	s := Reduce(Initial(), Initialize{})
	s = Reduce(s, AddTimer{Timer: testTimer("a", "First", "X", 10)})
	s = Reduce(s, AddTimer{Timer: testTimer("b", "Second", "X", 20)})

	if len(s.Timers) != 2 {
		t.Fatalf("len(Timers) = %d, want 2", len(s.Timers))
	}
	if s.Timers[0].ID != "a" || s.Timers[1].ID != "b" {
		t.Errorf("order = [%s %s], want [a b]", s.Timers[0].ID, s.Timers[1].ID)
	}
	mustHold(t, s)
}

func TestReduce_UpdateTimer(t *testing.T) {
	s := Reduce(Initial(), Initialize{Timers: []Timer{testTimer("a", "Old", "X", 10)}})

	replacement := testTimer("a", "New", "Y", 10)
	s = Reduce(s, UpdateTimer{Timer: replacement})

	if s.Timers[0].Name != "New" || s.Timers[0].Category != "Y" {
		t.Errorf("timer = %+v, want full replacement", s.Timers[0])
	}

	// Unknown id is a no-op
	before := s
	s = Reduce(s, UpdateTimer{Timer: testTimer("missing", "Nope", "Z", 5)})
	if len(s.Timers) != 1 || s.Timers[0].Name != before.Timers[0].Name {
		t.Error("UpdateTimer with absent id should not change state")
	}
}

func TestReduce_DeleteTimer(t *testing.T) {
	s := Reduce(Initial(), Initialize{Timers: []Timer{
		testTimer("a", "A", "X", 10),
		testTimer("b", "B", "X", 10),
	}})

	s = Reduce(s, DeleteTimer{ID: "a"})
	if len(s.Timers) != 1 || s.Timers[0].ID != "b" {
		t.Errorf("Timers = %+v, want only b", s.Timers)
	}

	// Deleting an absent id is a no-op
	s = Reduce(s, DeleteTimer{ID: "a"})
	if len(s.Timers) != 1 {
		t.Errorf("len(Timers) = %d, want 1", len(s.Timers))
	}
}

func TestReduce_CompleteTimer_ArchivesPreCompletionSnapshot(t *testing.T) {
	tm := testTimer("x", "Focus", "Work", 10)
	tm.Status = StatusRunning
	tm.RemainingTime = 1
	s := Reduce(Initial(), Initialize{Timers: []Timer{tm}})

	s = Reduce(s, CompleteTimer{ID: "x"})
	mustHold(t, s)

	got := s.Timers[0]
	if got.Status != StatusCompleted || got.RemainingTime != 0 {
		t.Errorf("timer = {%s %d}, want {completed 0}", got.Status, got.RemainingTime)
	}

	if len(s.History) != 1 {
		t.Fatalf("len(History) = %d, want 1", len(s.History))
	}
	entry := s.History[0]
	if entry.Duration != 10 {
		t.Errorf("entry.Duration = %d, want 10", entry.Duration)
	}
	if entry.Name != "Focus" || entry.Category != "Work" {
		t.Errorf("entry = %+v, want fields copied from the timer", entry)
	}
	if entry.ID == "x" || entry.ID == "" {
		t.Errorf("entry.ID = %q, want a fresh id", entry.ID)
	}
	if entry.CompletedAt.IsZero() {
		t.Error("entry.CompletedAt not set")
	}
}

func TestReduce_CompleteTimer_Idempotent(t *testing.T) {
	tm := testTimer("x", "Focus", "Work", 10)
	tm.Status = StatusRunning
	s := Reduce(Initial(), Initialize{Timers: []Timer{tm}})

	s = Reduce(s, CompleteTimer{ID: "x"})
	s = Reduce(s, CompleteTimer{ID: "x"})

	if len(s.History) != 1 {
		t.Errorf("len(History) = %d after double complete, want 1", len(s.History))
	}
}

func TestReduce_CompleteTimer_AbsentID(t *testing.T) {
	s := Reduce(Initial(), Initialize{Timers: []Timer{testTimer("a", "A", "X", 10)}})
	s = Reduce(s, CompleteTimer{ID: "ghost"})
	if len(s.History) != 0 {
		t.Errorf("len(History) = %d, want 0", len(s.History))
	}
}

func TestReduce_StartTimer_RefusesCompleted(t *testing.T) {
	tm := testTimer("x", "Done", "X", 10)
	tm.Status = StatusCompleted
	tm.RemainingTime = 0
	s := Reduce(Initial(), Initialize{Timers: []Timer{tm}})

	s = Reduce(s, StartTimer{ID: "x"})
	if s.Timers[0].Status != StatusCompleted {
		t.Errorf("status = %s, want completed (start refused)", s.Timers[0].Status)
	}
	mustHold(t, s)
}

func TestReduce_PauseTimer_Idempotent(t *testing.T) {
	tm := testTimer("x", "Focus", "Work", 10)
	tm.Status = StatusRunning
	s := Reduce(Initial(), Initialize{Timers: []Timer{tm}})

	once := Reduce(s, PauseTimer{ID: "x"})
	twice := Reduce(once, PauseTimer{ID: "x"})

	if once.Timers[0] != twice.Timers[0] {
		t.Errorf("pausing twice = %+v, want same as once %+v", twice.Timers[0], once.Timers[0])
	}
}

func TestReduce_ResetTimer(t *testing.T) {
	tm := testTimer("x", "Focus", "Work", 10)
	tm.Status = StatusRunning
	tm.RemainingTime = 3
	s := Reduce(Initial(), Initialize{Timers: []Timer{tm}})

	s = Reduce(s, ResetTimer{ID: "x"})
	got := s.Timers[0]
	if got.Status != StatusPaused || got.RemainingTime != 10 {
		t.Errorf("after reset = {%s %d}, want {paused 10}", got.Status, got.RemainingTime)
	}
}

func TestReduce_ResetTimer_ReopensCompleted(t *testing.T) {
	tm := testTimer("x", "Done", "X", 10)
	tm.Status = StatusCompleted
	tm.RemainingTime = 0
	s := Reduce(Initial(), Initialize{Timers: []Timer{tm}})

	s = Reduce(s, ResetTimer{ID: "x"})
	got := s.Timers[0]
	if got.Status != StatusPaused || got.RemainingTime != 10 {
		t.Errorf("after reset = {%s %d}, want {paused 10}", got.Status, got.RemainingTime)
	}
	mustHold(t, s)
}

func TestReduce_UpdateRemainingTime(t *testing.T) {
	tm := testTimer("x", "Focus", "Work", 10)
	tm.Status = StatusRunning
	s := Reduce(Initial(), Initialize{Timers: []Timer{tm}})

	s = Reduce(s, UpdateRemainingTime{ID: "x", RemainingTime: 7})
	if s.Timers[0].RemainingTime != 7 {
		t.Errorf("remaining = %d, want 7", s.Timers[0].RemainingTime)
	}
	if s.Timers[0].Status != StatusRunning {
		t.Errorf("status = %s, want running (unchanged)", s.Timers[0].Status)
	}
}

func TestReduce_CategoryActions_CaseSensitive(t *testing.T) {
	study := testTimer("a", "Read", "Study", 60)
	lower := testTimer("b", "Nap", "study", 60)
	study.Status = StatusRunning
	lower.Status = StatusRunning
	s := Reduce(Initial(), Initialize{Timers: []Timer{study, lower}})

	s = Reduce(s, PauseCategoryTimers{Category: "Study"})

	if s.Timers[0].Status != StatusPaused {
		t.Errorf("Study timer status = %s, want paused", s.Timers[0].Status)
	}
	if s.Timers[1].Status != StatusRunning {
		t.Errorf("study (lowercase) timer status = %s, want running (untouched)", s.Timers[1].Status)
	}
}

func TestReduce_StartCategory_SkipsCompleted(t *testing.T) {
	done := testTimer("a", "Done", "Work", 10)
	done.Status = StatusCompleted
	done.RemainingTime = 0
	idle := testTimer("b", "Idle", "Work", 10)
	other := testTimer("c", "Other", "Play", 10)
	s := Reduce(Initial(), Initialize{Timers: []Timer{done, idle, other}})

	s = Reduce(s, StartCategoryTimers{Category: "Work"})
	mustHold(t, s)

	if s.Timers[0].Status != StatusCompleted {
		t.Errorf("completed timer status = %s, want completed", s.Timers[0].Status)
	}
	if s.Timers[1].Status != StatusRunning {
		t.Errorf("idle Work timer status = %s, want running", s.Timers[1].Status)
	}
	if s.Timers[2].Status != StatusPaused {
		t.Errorf("Play timer status = %s, want paused (untouched)", s.Timers[2].Status)
	}
}

func TestReduce_PauseCategory_OnlyRunning(t *testing.T) {
	running := testTimer("a", "Run", "Work", 10)
	running.Status = StatusRunning
	paused := testTimer("b", "Pause", "Work", 10)
	done := testTimer("c", "Done", "Work", 10)
	done.Status = StatusCompleted
	done.RemainingTime = 0
	s := Reduce(Initial(), Initialize{Timers: []Timer{running, paused, done}})

	s = Reduce(s, PauseCategoryTimers{Category: "Work"})
	mustHold(t, s)

	if s.Timers[0].Status != StatusPaused {
		t.Errorf("running timer status = %s, want paused", s.Timers[0].Status)
	}
	if s.Timers[2].Status != StatusCompleted {
		t.Errorf("completed timer status = %s, want completed (untouched)", s.Timers[2].Status)
	}
}

func TestReduce_ResetCategory_AllTimers(t *testing.T) {
	running := testTimer("a", "Run", "Work", 10)
	running.Status = StatusRunning
	running.RemainingTime = 2
	done := testTimer("b", "Done", "Work", 20)
	done.Status = StatusCompleted
	done.RemainingTime = 0
	s := Reduce(Initial(), Initialize{Timers: []Timer{running, done}})

	s = Reduce(s, ResetCategoryTimers{Category: "Work"})
	mustHold(t, s)

	for i, want := range []int{10, 20} {
		if s.Timers[i].Status != StatusPaused || s.Timers[i].RemainingTime != want {
			t.Errorf("timer %d = {%s %d}, want {paused %d}", i, s.Timers[i].Status, s.Timers[i].RemainingTime, want)
		}
	}
}

// fakeAction exercises the reducer's default branch.
type fakeAction struct{}

func (fakeAction) isAction() {}

func TestReduce_UnknownAction_NoOp(t *testing.T) {
	s := Reduce(Initial(), Initialize{Timers: []Timer{testTimer("a", "A", "X", 10)}})
	next := Reduce(s, fakeAction{})
	if len(next.Timers) != 1 || next.Timers[0] != s.Timers[0] {
		t.Error("unknown action should return state unchanged")
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	tm := testTimer("a", "A", "X", 10)
	tm.Status = StatusRunning
	s := Reduce(Initial(), Initialize{Timers: []Timer{tm}})

	_ = Reduce(s, PauseTimer{ID: "a"})
	if s.Timers[0].Status != StatusRunning {
		t.Error("Reduce mutated the input state")
	}

	_ = Reduce(s, DeleteTimer{ID: "a"})
	if len(s.Timers) != 1 {
		t.Error("DeleteTimer mutated the input slice")
	}
}

func TestState_SerializeRoundTrip(t *testing.T) {
	running := testTimer("a", "Run", "Work", 90)
	running.Status = StatusRunning
	running.RemainingTime = 45
	entry := HistoryEntry{Timer: testTimer("h", "Old", "Play", 30), CompletedAt: time.Now().Truncate(time.Second)}
	entry.Status = StatusCompleted
	entry.RemainingTime = 0

	s := Reduce(Initial(), Initialize{Timers: []Timer{running}, History: []HistoryEntry{entry}})

	timersJSON, err := json.Marshal(s.Timers)
	if err != nil {
		t.Fatalf("marshal timers: %v", err)
	}
	historyJSON, err := json.Marshal(s.History)
	if err != nil {
		t.Fatalf("marshal history: %v", err)
	}

	var timers []Timer
	var entries []HistoryEntry
	if err := json.Unmarshal(timersJSON, &timers); err != nil {
		t.Fatalf("unmarshal timers: %v", err)
	}
	if err := json.Unmarshal(historyJSON, &entries); err != nil {
		t.Fatalf("unmarshal history: %v", err)
	}

	loaded := Reduce(Initial(), Initialize{Timers: timers, History: entries})

	if len(loaded.Timers) != 1 || loaded.Timers[0].ID != "a" ||
		loaded.Timers[0].RemainingTime != 45 || loaded.Timers[0].Status != StatusRunning {
		t.Errorf("round-tripped timer = %+v, want original", loaded.Timers[0])
	}
	if len(loaded.History) != 1 || loaded.History[0].ID != "h" ||
		!loaded.History[0].CompletedAt.Equal(entry.CompletedAt) {
		t.Errorf("round-tripped entry = %+v, want original", loaded.History[0])
	}
	if loaded.IsLoading {
		t.Error("IsLoading = true after Initialize")
	}
}

func TestState_Find(t *testing.T) {
	s := Reduce(Initial(), Initialize{Timers: []Timer{testTimer("a", "A", "X", 10)}})

	if got, ok := s.Find("a"); !ok || got.Name != "A" {
		t.Errorf("Find(a) = %+v, %v; want the timer, true", got, ok)
	}
	if _, ok := s.Find("missing"); ok {
		t.Error("Find(missing) = true, want false")
	}
}
