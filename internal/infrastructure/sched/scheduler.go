// Package sched provides the timer schedulers behind the controller's show
// and hide delays: a clockwork-backed scheduler for normal operation and a
// manually stepped one for tests and timeline simulation.
package sched

import (
	"time"

	"github.com/driftnote/scrollkit/internal/application/port"
	"github.com/jonboulle/clockwork"
)

// ClockScheduler schedules callbacks through a clockwork clock. With the
// real clock a callback runs on its own goroutine, like time.AfterFunc.
type ClockScheduler struct {
	clock clockwork.Clock
}

var _ port.Scheduler = (*ClockScheduler)(nil)

// New returns a scheduler backed by the wall clock.
func New() *ClockScheduler {
	return NewWithClock(clockwork.NewRealClock())
}

// NewWithClock returns a scheduler backed by the given clock.
func NewWithClock(clock clockwork.Clock) *ClockScheduler {
	return &ClockScheduler{clock: clock}
}

// Now returns the clock's current time.
func (s *ClockScheduler) Now() time.Time {
	return s.clock.Now()
}

// Schedule runs fn once after d.
func (s *ClockScheduler) Schedule(d time.Duration, fn func()) port.TimerHandle {
	return clockHandle{timer: s.clock.AfterFunc(d, fn)}
}

type clockHandle struct {
	timer clockwork.Timer
}

func (h clockHandle) Cancel() {
	h.timer.Stop()
}
