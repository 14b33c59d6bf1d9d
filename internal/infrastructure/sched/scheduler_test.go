package sched_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/driftnote/scrollkit/internal/infrastructure/sched"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestClockSchedulerFiresAfterDelay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := sched.NewWithClock(clock)

	var fired atomic.Bool
	s.Schedule(100*time.Millisecond, func() { fired.Store(true) })

	clock.Advance(99 * time.Millisecond)
	assert.False(t, fired.Load())

	clock.Advance(1 * time.Millisecond)
	assert.Eventually(t, fired.Load, time.Second, time.Millisecond)
}

func TestClockSchedulerCancelStopsCallback(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := sched.NewWithClock(clock)

	var fired atomic.Bool
	h := s.Schedule(50*time.Millisecond, func() { fired.Store(true) })
	h.Cancel()

	clock.Advance(time.Second)
	time.Sleep(10 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestClockSchedulerNowTracksClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s := sched.NewWithClock(clock)

	start := s.Now()
	clock.Advance(90 * time.Second)

	assert.Equal(t, start.Add(90*time.Second), s.Now())
}

func TestNewUsesWallClock(t *testing.T) {
	s := sched.New()
	assert.WithinDuration(t, time.Now(), s.Now(), time.Second)
}
