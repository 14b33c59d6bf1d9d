// Package gtk adapts GTK widgets, GLib timers, and display style providers
// to the application ports. Everything here runs on the GTK main thread,
// which is also where scroll events are delivered.
package gtk

import (
	"sync"
	"time"

	"github.com/driftnote/scrollkit/internal/application/port"
	"github.com/jwijenbergh/puregotk/v4/glib"
)

// MainLoopScheduler schedules one-shot callbacks on the GLib main loop.
// Callbacks therefore never race with scroll handlers or widget access.
type MainLoopScheduler struct{}

var _ port.Scheduler = (*MainLoopScheduler)(nil)

// NewMainLoopScheduler creates a scheduler backed by glib.TimeoutAdd.
func NewMainLoopScheduler() *MainLoopScheduler {
	return &MainLoopScheduler{}
}

// Now returns the wall clock time.
func (s *MainLoopScheduler) Now() time.Time {
	return time.Now()
}

// Schedule runs fn once on the main loop after d.
func (s *MainLoopScheduler) Schedule(d time.Duration, fn func()) port.TimerHandle {
	h := &mainLoopHandle{}

	var cb glib.SourceFunc
	cb = func(_ uintptr) bool {
		h.mu.Lock()
		if h.cancelled {
			h.mu.Unlock()
			return false
		}
		h.fired = true
		h.source = 0
		h.mu.Unlock()

		fn()
		return false // Don't repeat
	}

	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}

	h.mu.Lock()
	h.source = glib.TimeoutAdd(uint(ms), &cb, 0)
	h.mu.Unlock()
	return h
}

type mainLoopHandle struct {
	mu        sync.Mutex
	source    uint
	fired     bool
	cancelled bool
}

// Cancel removes the pending GLib source. Cancelling a fired or already
// cancelled handle is a no-op; the source id must not be removed twice.
func (h *mainLoopHandle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.fired || h.cancelled {
		return
	}
	h.cancelled = true

	if h.source != 0 {
		glib.SourceRemove(h.source)
		h.source = 0
	}
}
