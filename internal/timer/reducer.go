package timer

import "time"

// State is the root aggregate: live timers in creation order, history in
// append order, and a loading flag that gates persistence writes until
// the initial load has been applied.
type State struct {
	Timers    []Timer
	History   []HistoryEntry
	IsLoading bool
}

// Initial returns the process-start state: empty collections, loading.
func Initial() State {
	return State{IsLoading: true}
}

// Reduce is a pure state-transition function. It never mutates its input:
// every transition builds fresh slices and fresh timer values, so callers
// holding an old snapshot keep an unchanged view. Actions referencing an
// absent id are silent no-ops.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Initialize:
		return State{
			Timers:    append([]Timer(nil), a.Timers...),
			History:   append([]HistoryEntry(nil), a.History...),
			IsLoading: false,
		}

	case AddTimer:
		next := s
		next.Timers = append(append([]Timer(nil), s.Timers...), a.Timer)
		return next

	case UpdateTimer:
		return mapTimers(s, func(t Timer) Timer {
			if t.ID == a.Timer.ID {
				return a.Timer
			}
			return t
		})

	case DeleteTimer:
		next := s
		kept := make([]Timer, 0, len(s.Timers))
		for _, t := range s.Timers {
			if t.ID != a.ID {
				kept = append(kept, t)
			}
		}
		next.Timers = kept
		return next

	case CompleteTimer:
		var snapshot *Timer
		for i := range s.Timers {
			if s.Timers[i].ID == a.ID {
				snapshot = &s.Timers[i]
				break
			}
		}
		// Absent id, or already completed: nothing to archive. The
		// status check makes a scheduler/user completion race append
		// exactly one history entry.
		if snapshot == nil || snapshot.Status == StatusCompleted {
			return s
		}

		next := mapTimers(s, func(t Timer) Timer {
			if t.ID == a.ID {
				t.Status = StatusCompleted
				t.RemainingTime = 0
			}
			return t
		})

		entry := HistoryEntry{Timer: *snapshot, CompletedAt: time.Now()}
		entry.ID = NewID()
		next.History = append(append([]HistoryEntry(nil), s.History...), entry)
		return next

	case StartTimer:
		return mapTimers(s, func(t Timer) Timer {
			// A completed timer has zero remaining time; running it
			// would break the completed <=> zero invariant.
			if t.ID == a.ID && t.Status != StatusCompleted {
				t.Status = StatusRunning
			}
			return t
		})

	case PauseTimer:
		return mapTimers(s, func(t Timer) Timer {
			if t.ID == a.ID {
				t.Status = StatusPaused
			}
			return t
		})

	case ResetTimer:
		return mapTimers(s, func(t Timer) Timer {
			if t.ID == a.ID {
				t.Status = StatusPaused
				t.RemainingTime = t.Duration
			}
			return t
		})

	case UpdateRemainingTime:
		return mapTimers(s, func(t Timer) Timer {
			if t.ID == a.ID {
				t.RemainingTime = a.RemainingTime
			}
			return t
		})

	case StartCategoryTimers:
		return mapTimers(s, func(t Timer) Timer {
			if t.Category == a.Category && t.Status != StatusCompleted {
				t.Status = StatusRunning
			}
			return t
		})

	case PauseCategoryTimers:
		return mapTimers(s, func(t Timer) Timer {
			if t.Category == a.Category && t.Status == StatusRunning {
				t.Status = StatusPaused
			}
			return t
		})

	case ResetCategoryTimers:
		return mapTimers(s, func(t Timer) Timer {
			if t.Category == a.Category {
				t.Status = StatusPaused
				t.RemainingTime = t.Duration
			}
			return t
		})

	default:
		return s
	}
}

// mapTimers rebuilds the timer slice through f, leaving history and the
// loading flag untouched. Timers are passed and returned by value.
func mapTimers(s State, f func(Timer) Timer) State {
	next := s
	out := make([]Timer, len(s.Timers))
	for i, t := range s.Timers {
		out[i] = f(t)
	}
	next.Timers = out
	return next
}

// Find returns the timer with the given id, if present.
func (s State) Find(id string) (Timer, bool) {
	for _, t := range s.Timers {
		if t.ID == id {
			return t, true
		}
	}
	return Timer{}, false
}
