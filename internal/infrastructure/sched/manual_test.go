package sched_test

import (
	"testing"
	"time"

	"github.com/driftnote/scrollkit/internal/application/port"
	"github.com/driftnote/scrollkit/internal/infrastructure/sched"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manualStart() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestManualFiresInDeadlineOrder(t *testing.T) {
	m := sched.NewManual(manualStart())

	var order []string
	m.Schedule(300*time.Millisecond, func() { order = append(order, "c") })
	m.Schedule(100*time.Millisecond, func() { order = append(order, "a") })
	m.Schedule(200*time.Millisecond, func() { order = append(order, "b") })

	m.Advance(time.Second)

	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 0, m.Pending())
}

func TestManualTiesFireInSchedulingOrder(t *testing.T) {
	m := sched.NewManual(manualStart())

	var order []int
	m.Schedule(50*time.Millisecond, func() { order = append(order, 1) })
	m.Schedule(50*time.Millisecond, func() { order = append(order, 2) })
	m.Schedule(50*time.Millisecond, func() { order = append(order, 3) })

	m.Advance(50 * time.Millisecond)

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestManualDoesNotFireEarly(t *testing.T) {
	m := sched.NewManual(manualStart())

	fired := false
	m.Schedule(100*time.Millisecond, func() { fired = true })

	m.Advance(99 * time.Millisecond)
	assert.False(t, fired)
	assert.Equal(t, 1, m.Pending())

	m.Advance(1 * time.Millisecond)
	assert.True(t, fired)
	assert.Equal(t, 0, m.Pending())
}

func TestManualClockStopsAtEachDeadline(t *testing.T) {
	m := sched.NewManual(manualStart())

	var seen []time.Time
	m.Schedule(100*time.Millisecond, func() { seen = append(seen, m.Now()) })
	m.Schedule(250*time.Millisecond, func() { seen = append(seen, m.Now()) })

	m.Advance(time.Second)

	require.Len(t, seen, 2)
	assert.Equal(t, manualStart().Add(100*time.Millisecond), seen[0])
	assert.Equal(t, manualStart().Add(250*time.Millisecond), seen[1])
	assert.Equal(t, manualStart().Add(time.Second), m.Now())
}

func TestManualFiresTimersScheduledDuringAdvance(t *testing.T) {
	m := sched.NewManual(manualStart())

	var order []string
	m.Schedule(100*time.Millisecond, func() {
		order = append(order, "first")
		m.Schedule(100*time.Millisecond, func() { order = append(order, "chained") })
	})

	m.Advance(200 * time.Millisecond)

	assert.Equal(t, []string{"first", "chained"}, order)
	assert.Equal(t, 0, m.Pending())
}

func TestManualChainedTimerBeyondWindowStaysPending(t *testing.T) {
	m := sched.NewManual(manualStart())

	var order []string
	m.Schedule(100*time.Millisecond, func() {
		order = append(order, "first")
		m.Schedule(500*time.Millisecond, func() { order = append(order, "late") })
	})

	m.Advance(200 * time.Millisecond)

	assert.Equal(t, []string{"first"}, order)
	assert.Equal(t, 1, m.Pending())

	m.Advance(400 * time.Millisecond)
	assert.Equal(t, []string{"first", "late"}, order)
}

func TestManualCancelPreventsFiring(t *testing.T) {
	m := sched.NewManual(manualStart())

	fired := false
	h := m.Schedule(100*time.Millisecond, func() { fired = true })
	h.Cancel()

	m.Advance(time.Second)

	assert.False(t, fired)
	assert.Equal(t, 0, m.Pending())
}

func TestManualCancelAfterFireIsNoOp(t *testing.T) {
	m := sched.NewManual(manualStart())

	fired := 0
	h := m.Schedule(100*time.Millisecond, func() { fired++ })

	m.Advance(time.Second)
	h.Cancel()
	m.Advance(time.Second)

	assert.Equal(t, 1, fired)
}

func TestManualCancelDuringAdvance(t *testing.T) {
	m := sched.NewManual(manualStart())

	var second port.TimerHandle
	fired := false
	m.Schedule(100*time.Millisecond, func() { second.Cancel() })
	second = m.Schedule(200*time.Millisecond, func() { fired = true })

	m.Advance(time.Second)

	assert.False(t, fired)
}

func TestManualNowAdvancesWithoutTimers(t *testing.T) {
	m := sched.NewManual(manualStart())

	m.Advance(3 * time.Second)

	assert.Equal(t, manualStart().Add(3*time.Second), m.Now())
}
