package testutil

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

// ManualScheduler is a controllable timer source for tests. Callbacks only
// run when the test advances it.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
	delays []time.Duration
}

type manualTimer struct {
	due     time.Duration
	fn      func()
	stopped bool
	fired   bool
}

// NewManualScheduler returns a scheduler with no pending timers.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc registers fn to run once the scheduler has been advanced by d.
// The returned stop function reports whether it prevented the call.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer := &manualTimer{due: s.now + d, fn: fn}
	s.timers = append(s.timers, timer)
	s.delays = append(s.delays, d)

	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if timer.stopped || timer.fired {
			return false
		}
		timer.stopped = true
		return true
	}
}

// Advance moves time forward and runs every timer that became due, in due
// order. Callbacks run without the scheduler lock held.
func (s *ManualScheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	s.now += d
	due := s.collectDueLocked(func(timer *manualTimer) bool { return timer.due <= s.now })
	s.mu.Unlock()

	for _, timer := range due {
		timer.fn()
	}
	return len(due)
}

// FireAll runs every pending timer regardless of its delay.
func (s *ManualScheduler) FireAll() int {
	s.mu.Lock()
	due := s.collectDueLocked(func(*manualTimer) bool { return true })
	s.mu.Unlock()

	for _, timer := range due {
		timer.fn()
	}
	return len(due)
}

// FireStale runs fn of a timer even though it was stopped, as a real timer
// goroutine can do when Stop loses the race. It reports whether any stopped
// timer existed.
func (s *ManualScheduler) FireStale() bool {
	s.mu.Lock()
	var stale []*manualTimer
	for _, timer := range s.timers {
		if timer.stopped && !timer.fired {
			timer.fired = true
			stale = append(stale, timer)
		}
	}
	s.mu.Unlock()

	for _, timer := range stale {
		timer.fn()
	}
	return len(stale) > 0
}

// Pending counts timers that are neither stopped nor fired.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, timer := range s.timers {
		if !timer.stopped && !timer.fired {
			count++
		}
	}
	return count
}

// Delays lists the delay of every timer ever scheduled.
func (s *ManualScheduler) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.delays...)
}

func (s *ManualScheduler) collectDueLocked(match func(*manualTimer) bool) []*manualTimer {
	var due []*manualTimer
	for _, timer := range s.timers {
		if timer.stopped || timer.fired || !match(timer) {
			continue
		}
		timer.fired = true
		due = append(due, timer)
	}
	slices.SortStableFunc(due, func(a, b *manualTimer) int {
		return cmp.Compare(a.due, b.due)
	})
	return due
}
