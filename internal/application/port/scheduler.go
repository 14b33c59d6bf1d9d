package port

import "time"

// TimerHandle is a cancellable pending timer. Cancel is idempotent and must
// be a no-op once the timer has fired.
type TimerHandle interface {
	Cancel()
}

// Scheduler schedules one-shot callbacks on the host's event loop. The GTK
// adapter dispatches through the GLib main loop; the clock adapter uses a
// clockwork clock so tests and the simulator can drive time by hand.
//
// Callbacks run serially with respect to the loop that owns the scheduler;
// the controller never relies on them running concurrently.
type Scheduler interface {
	// Now returns the scheduler's current time.
	Now() time.Time

	// Schedule runs fn once after d has elapsed.
	Schedule(d time.Duration, fn func()) TimerHandle
}
