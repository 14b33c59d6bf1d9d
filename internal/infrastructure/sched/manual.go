package sched

import (
	"sync"
	"time"

	"github.com/driftnote/scrollkit/internal/application/port"
)

// Manual is a scheduler whose clock only moves when Advance is called.
// Due callbacks run synchronously on the advancing goroutine, in deadline
// order, with ties broken by scheduling order. That mirrors the serial
// dispatch of a UI event loop and keeps timer tests deterministic.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	when      time.Time
	seq       uint64
	fn        func()
	cancelled bool
	fired     bool
}

var _ port.Scheduler = (*Manual)(nil)

// NewManual returns a manual scheduler starting at the given instant.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the scheduler's current instant.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Schedule registers fn to run once the clock reaches now+d. A nonpositive
// delay fires on the next Advance, not inline.
func (m *Manual) Schedule(d time.Duration, fn func()) port.TimerHandle {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTimer{when: m.now.Add(d), seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return &manualHandle{m: m, t: t}
}

// Advance moves the clock forward by d, firing every due callback in order.
// Callbacks may schedule or cancel timers; a timer scheduled during Advance
// whose deadline still falls inside the window fires in the same call.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)

	for {
		next := m.nextDueLocked(target)
		if next == nil {
			break
		}
		if next.when.After(m.now) {
			m.now = next.when
		}
		next.fired = true
		fn := next.fn
		m.mu.Unlock()

		fn()

		m.mu.Lock()
	}

	m.now = target
	m.compactLocked()
	m.mu.Unlock()
}

// nextDueLocked returns the earliest live timer with a deadline at or before
// target, or nil. Caller holds m.mu.
func (m *Manual) nextDueLocked(target time.Time) *manualTimer {
	var next *manualTimer
	for _, t := range m.timers {
		if t.fired || t.cancelled || t.when.After(target) {
			continue
		}
		if next == nil || t.when.Before(next.when) || (t.when.Equal(next.when) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (m *Manual) compactLocked() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.fired && !t.cancelled {
			live = append(live, t)
		}
	}
	m.timers = live
}

// Pending returns the number of timers that are scheduled and still live.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.timers {
		if !t.fired && !t.cancelled {
			n++
		}
	}
	return n
}

type manualHandle struct {
	m *Manual
	t *manualTimer
}

func (h *manualHandle) Cancel() {
	h.m.mu.Lock()
	defer h.m.mu.Unlock()
	if !h.t.fired {
		h.t.cancelled = true
	}
}
