package state

import (
	"sync"
	"testing"

	"github.com/tickdown/tickdown/internal/timer"
)

func TestContainer_InitialState(t *testing.T) {
	c := New()
	snap := c.Snapshot()
	if !snap.IsLoading {
		t.Error("new container should be loading")
	}
	if len(snap.Timers) != 0 || len(snap.History) != 0 {
		t.Error("new container should be empty")
	}
}

func TestContainer_DispatchReturnsNewState(t *testing.T) {
	c := New()
	c.Dispatch(timer.Initialize{})

	tm := timer.New("Tea", "Kitchen", 180, false)
	st := c.Dispatch(timer.AddTimer{Timer: tm})

	if len(st.Timers) != 1 {
		t.Fatalf("len(Timers) = %d, want 1", len(st.Timers))
	}
	if got := c.Snapshot(); len(got.Timers) != 1 {
		t.Errorf("Snapshot len = %d, want 1", len(got.Timers))
	}
}

func TestContainer_DispatchDiffPairsStates(t *testing.T) {
	c := New()
	c.Dispatch(timer.Initialize{})
	c.Dispatch(timer.AddTimer{Timer: timer.New("Tea", "Kitchen", 180, false)})

	before, after := c.DispatchDiff(timer.AddTimer{Timer: timer.New("Rice", "Kitchen", 600, false)})

	if len(before.Timers) != 1 {
		t.Errorf("len(before.Timers) = %d, want 1", len(before.Timers))
	}
	if len(after.Timers) != 2 {
		t.Errorf("len(after.Timers) = %d, want 2", len(after.Timers))
	}
}

func TestContainer_ListenersRunPerDispatchInOrder(t *testing.T) {
	c := New()

	var mu sync.Mutex
	var calls []int
	c.Subscribe(func(timer.State) {
		mu.Lock()
		calls = append(calls, 1)
		mu.Unlock()
	})
	c.Subscribe(func(timer.State) {
		mu.Lock()
		calls = append(calls, 2)
		mu.Unlock()
	})

	c.Dispatch(timer.Initialize{})

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Errorf("listener calls = %v, want [1 2]", calls)
	}
}

func TestContainer_ListenerSeesPostDispatchState(t *testing.T) {
	c := New()
	c.Dispatch(timer.Initialize{})

	var seen int
	c.Subscribe(func(st timer.State) {
		seen = len(st.Timers)
	})

	c.Dispatch(timer.AddTimer{Timer: timer.New("A", "X", 10, false)})
	if seen != 1 {
		t.Errorf("listener saw %d timers, want 1", seen)
	}
}

func TestContainer_ConcurrentDispatches(t *testing.T) {
	c := New()
	c.Dispatch(timer.Initialize{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Dispatch(timer.AddTimer{Timer: timer.New("T", "X", 10, false)})
		}()
	}
	wg.Wait()

	if got := len(c.Snapshot().Timers); got != 50 {
		t.Errorf("len(Timers) = %d, want 50", got)
	}
}
