package timer

// Action is the closed set of state transitions understood by Reduce.
// One variant per action kind; payload fields carry exactly what the
// transition needs. Values outside this set reduce to a no-op.
type Action interface {
	isAction()
}

// Initialize replaces both collections and clears the loading flag.
// Dispatched exactly once, by the persistence synchronizer at startup.
type Initialize struct {
	Timers  []Timer
	History []HistoryEntry
}

// AddTimer appends a timer to the end of the collection.
// The caller guarantees the id is unique and the fields are validated.
type AddTimer struct {
	Timer Timer
}

// UpdateTimer replaces the timer with a matching id wholesale.
type UpdateTimer struct {
	Timer Timer
}

// DeleteTimer removes the timer with the given id.
type DeleteTimer struct {
	ID string
}

// CompleteTimer marks a timer completed and archives a pre-completion
// snapshot of it to history.
type CompleteTimer struct {
	ID string
}

// StartTimer sets a timer running.
type StartTimer struct {
	ID string
}

// PauseTimer pauses a timer.
type PauseTimer struct {
	ID string
}

// ResetTimer pauses a timer and restores its full duration.
type ResetTimer struct {
	ID string
}

// UpdateRemainingTime sets a timer's remaining seconds. The value is not
// validated here; callers pass >= 0.
type UpdateRemainingTime struct {
	ID            string
	RemainingTime int
}

// StartCategoryTimers starts every non-completed timer in the category.
type StartCategoryTimers struct {
	Category string
}

// PauseCategoryTimers pauses every running timer in the category.
type PauseCategoryTimers struct {
	Category string
}

// ResetCategoryTimers resets every timer in the category to paused at
// full duration.
type ResetCategoryTimers struct {
	Category string
}

func (Initialize) isAction()          {}
func (AddTimer) isAction()            {}
func (UpdateTimer) isAction()         {}
func (DeleteTimer) isAction()         {}
func (CompleteTimer) isAction()       {}
func (StartTimer) isAction()          {}
func (PauseTimer) isAction()          {}
func (ResetTimer) isAction()          {}
func (UpdateRemainingTime) isAction() {}
func (StartCategoryTimers) isAction() {}
func (PauseCategoryTimers) isAction() {}
func (ResetCategoryTimers) isAction() {}
