package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/tickdown/tickdown/internal/state"
	"github.com/tickdown/tickdown/internal/timer"
)

// Synchronizer mirrors the timer and history collections into the KV
// store. Reads happen once at startup; after that every state change is
// written asynchronously, fire-and-forget: failures are logged, never
// retried, never surfaced. In-memory state stays authoritative for the
// session regardless of persistence success.
type Synchronizer struct {
	kv        KV
	container *state.Container

	mu      sync.Mutex
	seq     uint64
	written uint64
	wg      sync.WaitGroup
}

// NewSynchronizer wires a synchronizer to the container without starting it.
func NewSynchronizer(kv KV, c *state.Container) *Synchronizer {
	return &Synchronizer{kv: kv, container: c}
}

// Start loads persisted state, dispatches Initialize, and begins
// mirroring subsequent changes. Absent or corrupt blobs load as empty
// collections; a load failure is never fatal. The IsLoading gate in the
// change listener guarantees no write is attempted before the
// load-triggered Initialize has been applied, so a startup race can
// never clobber previously persisted data with an empty state.
func (s *Synchronizer) Start(ctx context.Context) {
	timers := s.loadTimers(ctx)
	history := s.loadHistory(ctx)

	s.container.Subscribe(func(st timer.State) {
		if st.IsLoading {
			return
		}
		s.enqueue(st)
	})

	s.container.Dispatch(timer.Initialize{Timers: timers, History: history})
}

// Flush blocks until all writes enqueued so far have finished. One-shot
// CLI commands call this before exiting.
func (s *Synchronizer) Flush() {
	s.wg.Wait()
}

// enqueue records the change and persists it on its own goroutine.
// Writes are serialized under s.mu; a write that lost the race to a
// newer snapshot is skipped, so the store always converges on the
// latest dispatched state.
func (s *Synchronizer) enqueue(st timer.State) {
	s.mu.Lock()
	s.seq++
	n := s.seq
	s.mu.Unlock()

	s.wg.Add(1)
	go s.persist(n, st)
}

func (s *Synchronizer) persist(n uint64, st timer.State) {
	defer s.wg.Done()

	timersJSON, err := json.Marshal(st.Timers)
	if err != nil {
		log.Printf("store: failed to encode timers: %v", err)
		return
	}
	historyJSON, err := json.Marshal(st.History)
	if err != nil {
		log.Printf("store: failed to encode history: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= s.written {
		return // a newer snapshot already landed
	}
	ctx := context.Background()
	if err := s.kv.Set(ctx, KeyTimers, string(timersJSON)); err != nil {
		log.Printf("store: failed to save timers: %v", err)
	}
	if err := s.kv.Set(ctx, KeyHistory, string(historyJSON)); err != nil {
		log.Printf("store: failed to save history: %v", err)
	}
	s.written = n
}

func (s *Synchronizer) loadTimers(ctx context.Context) []timer.Timer {
	blob, found, err := s.kv.Get(ctx, KeyTimers)
	if err != nil {
		log.Printf("store: failed to load timers: %v", err)
		return nil
	}
	if !found {
		return nil
	}

	var timers []timer.Timer
	if err := json.Unmarshal([]byte(blob), &timers); err != nil {
		log.Printf("store: corrupt timers blob, starting empty: %v", err)
		return nil
	}
	for i := range timers {
		if !timers[i].Status.Valid() {
			timers[i].Status = timer.StatusPaused
		}
	}
	return timers
}

func (s *Synchronizer) loadHistory(ctx context.Context) []timer.HistoryEntry {
	blob, found, err := s.kv.Get(ctx, KeyHistory)
	if err != nil {
		log.Printf("store: failed to load history: %v", err)
		return nil
	}
	if !found {
		return nil
	}

	var entries []timer.HistoryEntry
	if err := json.Unmarshal([]byte(blob), &entries); err != nil {
		log.Printf("store: corrupt history blob, starting empty: %v", err)
		return nil
	}
	for i := range entries {
		if !entries[i].Status.Valid() {
			entries[i].Status = timer.StatusCompleted
		}
	}
	return entries
}
