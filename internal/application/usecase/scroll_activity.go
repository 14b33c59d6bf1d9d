package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/driftnote/scrollkit/internal/application/port"
	"github.com/driftnote/scrollkit/internal/domain/entity"
	"github.com/driftnote/scrollkit/internal/logging"
)

// ActiveClass is the CSS class toggled on a container while it is scrolling.
const ActiveClass = "scroll-active"

// registration tracks a container whose scroll events we listen to. It lives
// from Initialize/AddContainer until RemoveContainer or Teardown.
type registration struct {
	container port.Container
	sub       port.Subscription
}

// activityState is the transient timer state for one container. An entry is
// created on the first scroll event of a burst and deleted when the hide
// timer fires, so an idle container costs nothing.
type activityState struct {
	active       bool
	showSeq      uint64
	hideSeq      uint64
	showTimer    port.TimerHandle
	hideTimer    port.TimerHandle
	hideDeadline time.Time
}

// ScrollActivityUseCase drives a per-container {Idle, Active} indicator from
// scroll events, debounced by a show delay and a hide delay.
//
// Each scroll event cancels the container's pending hide timer and schedules
// a new one at hideDelay+showDelay, so the hide always lands at or after the
// show scheduled from the same burst and the indicator stays visible for at
// least hideDelay after the last event.
type ScrollActivityUseCase struct {
	mu  sync.RWMutex
	ctx context.Context

	scheduler port.Scheduler
	provider  port.ContainerProvider

	settings entity.ScrollbarSettings

	regs     map[port.ContainerID]*registration
	activity map[port.ContainerID]*activityState

	initialized bool

	onStateChange func(id port.ContainerID, active bool)
}

// NewScrollActivityUseCase creates the controller with its initial settings.
// Containers are attached later through Initialize or AddContainer.
func NewScrollActivityUseCase(ctx context.Context, scheduler port.Scheduler, settings entity.ScrollbarSettings) *ScrollActivityUseCase {
	return &ScrollActivityUseCase{
		ctx:       ctx,
		scheduler: scheduler,
		settings:  settings,
		regs:      make(map[port.ContainerID]*registration),
		activity:  make(map[port.ContainerID]*activityState),
	}
}

// SetOnStateChange sets a callback invoked on every Idle/Active transition.
func (uc *ScrollActivityUseCase) SetOnStateChange(fn func(id port.ContainerID, active bool)) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.onStateChange = fn
}

// Initialize discovers containers through the provider and subscribes to
// their scroll events. Containers already registered are left untouched, so
// calling Initialize again never duplicates listeners.
func (uc *ScrollActivityUseCase) Initialize(provider port.ContainerProvider) error {
	log := logging.FromContext(uc.ctx).With().Str("component", "scroll-activity").Logger()

	if provider == nil {
		return fmt.Errorf("scroll activity: nil container provider")
	}

	containers, err := provider.Containers(uc.ctx)
	if err != nil {
		return fmt.Errorf("scroll activity: discover containers: %w", err)
	}

	uc.mu.Lock()
	uc.provider = provider
	added := 0
	for _, c := range containers {
		ok, regErr := uc.registerLocked(c)
		if regErr != nil {
			uc.mu.Unlock()
			return regErr
		}
		if ok {
			added++
		}
	}
	uc.initialized = true
	total := len(uc.regs)
	uc.mu.Unlock()

	log.Debug().Int("added", added).Int("containers", total).Msg("scroll listeners attached")
	return nil
}

// Refresh re-invokes the container provider and registers any containers
// that appeared since the last scan. Existing registrations are kept.
func (uc *ScrollActivityUseCase) Refresh() error {
	log := logging.FromContext(uc.ctx).With().Str("component", "scroll-activity").Logger()

	uc.mu.RLock()
	provider := uc.provider
	uc.mu.RUnlock()

	if provider == nil {
		return fmt.Errorf("scroll activity: refresh before initialize")
	}

	containers, err := provider.Containers(uc.ctx)
	if err != nil {
		return fmt.Errorf("scroll activity: rescan containers: %w", err)
	}

	uc.mu.Lock()
	added := 0
	for _, c := range containers {
		ok, regErr := uc.registerLocked(c)
		if regErr != nil {
			uc.mu.Unlock()
			return regErr
		}
		if ok {
			added++
		}
	}
	total := len(uc.regs)
	uc.mu.Unlock()

	if added > 0 {
		log.Debug().Int("added", added).Int("containers", total).Msg("container rescan picked up new panels")
	}
	return nil
}

// AddContainer subscribes to one container's scroll events. Adding a
// container that is already registered is a no-op.
func (uc *ScrollActivityUseCase) AddContainer(c port.Container) error {
	if c == nil {
		return fmt.Errorf("scroll activity: nil container")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	_, err := uc.registerLocked(c)
	return err
}

// registerLocked subscribes to c unless its ID is already tracked. Returns
// true when a new registration was made. Caller holds uc.mu.
func (uc *ScrollActivityUseCase) registerLocked(c port.Container) (bool, error) {
	id := c.ID()
	if _, exists := uc.regs[id]; exists {
		return false, nil
	}

	sub, err := c.ConnectScroll(func() {
		uc.OnScroll(id)
	})
	if err != nil {
		return false, fmt.Errorf("scroll activity: connect %q: %w", id, err)
	}

	uc.regs[id] = &registration{container: c, sub: sub}
	return true, nil
}

// RemoveContainer drops a container: its listener is disconnected, pending
// timers are cancelled and the indicator class is cleared. Unknown IDs are
// ignored.
func (uc *ScrollActivityUseCase) RemoveContainer(id port.ContainerID) {
	log := logging.FromContext(uc.ctx).With().Str("component", "scroll-activity").Logger()

	uc.mu.Lock()
	reg, exists := uc.regs[id]
	if !exists {
		uc.mu.Unlock()
		return
	}

	wasActive := uc.clearActivityLocked(id)
	if wasActive {
		reg.container.RemoveCssClass(ActiveClass)
	}
	if reg.sub != nil {
		reg.sub.Disconnect()
	}
	delete(uc.regs, id)
	fn := uc.onStateChange
	uc.mu.Unlock()

	log.Debug().Str("container", string(id)).Msg("container removed")
	if wasActive && fn != nil {
		fn(id, false)
	}
}

// OnScroll handles one qualifying scroll event for a registered container.
// Events for unknown containers are filtered out, not treated as errors.
func (uc *ScrollActivityUseCase) OnScroll(id port.ContainerID) {
	uc.mu.Lock()
	reg, exists := uc.regs[id]
	if !exists {
		uc.mu.Unlock()
		logging.FromContext(uc.ctx).Trace().Str("container", string(id)).Msg("scroll for unregistered container ignored")
		return
	}

	s := uc.settings
	st := uc.activity[id]
	if st == nil {
		st = &activityState{}
		uc.activity[id] = st
	}

	// A new event always replaces the pending hide timer. The stored
	// handle may already have fired or been cancelled; hideSeq makes any
	// stale callback a no-op.
	if st.hideTimer != nil {
		st.hideTimer.Cancel()
		st.hideTimer = nil
	}
	st.hideSeq++

	becameActive := false
	if !st.active {
		if s.ShowDelayMs > 0 {
			// The show fires showDelay after the first event of the
			// burst. Later events in the burst keep the original
			// deadline, they do not push the show out.
			if st.showTimer == nil {
				st.showSeq++
				seq := st.showSeq
				st.showTimer = uc.scheduler.Schedule(s.ShowDelay(), func() {
					uc.fireShow(id, seq)
				})
			}
		} else {
			if st.showTimer != nil {
				st.showTimer.Cancel()
				st.showTimer = nil
				st.showSeq++
			}
			st.active = true
			reg.container.AddCssClass(ActiveClass)
			becameActive = true
		}
	}

	// Hide lands hideDelay+showDelay after this event, so it can never
	// beat the show scheduled from the same burst.
	total := s.HideDelay() + s.ShowDelay()
	st.hideDeadline = uc.scheduler.Now().Add(total)
	hideSeq := st.hideSeq
	st.hideTimer = uc.scheduler.Schedule(total, func() {
		uc.fireHide(id, hideSeq)
	})
	fn := uc.onStateChange
	uc.mu.Unlock()

	if becameActive && fn != nil {
		fn(id, true)
	}
}

func (uc *ScrollActivityUseCase) fireShow(id port.ContainerID, seq uint64) {
	uc.mu.Lock()
	st := uc.activity[id]
	if st == nil || seq != st.showSeq {
		uc.mu.Unlock()
		return
	}
	st.showTimer = nil

	// A show landing at or past the hide deadline would flash the
	// indicator back on after it was already due to disappear. Drop it.
	if !st.hideDeadline.IsZero() && !uc.scheduler.Now().Before(st.hideDeadline) {
		uc.mu.Unlock()
		return
	}
	if st.active {
		uc.mu.Unlock()
		return
	}

	st.active = true
	if reg := uc.regs[id]; reg != nil {
		reg.container.AddCssClass(ActiveClass)
	}
	fn := uc.onStateChange
	uc.mu.Unlock()

	if fn != nil {
		fn(id, true)
	}
}

func (uc *ScrollActivityUseCase) fireHide(id port.ContainerID, seq uint64) {
	uc.mu.Lock()
	st := uc.activity[id]
	if st == nil || seq != st.hideSeq {
		uc.mu.Unlock()
		return
	}

	delete(uc.activity, id)
	if st.showTimer != nil {
		st.showTimer.Cancel()
		st.showTimer = nil
		st.showSeq++
	}

	wasActive := st.active
	if wasActive {
		if reg := uc.regs[id]; reg != nil {
			reg.container.RemoveCssClass(ActiveClass)
		}
	}
	fn := uc.onStateChange
	uc.mu.Unlock()

	if wasActive && fn != nil {
		fn(id, false)
	}
}

// UpdateSettings swaps the settings snapshot. Timers already scheduled keep
// their original deadlines; only scheduling done after the swap sees the new
// delays.
func (uc *ScrollActivityUseCase) UpdateSettings(s entity.ScrollbarSettings) {
	log := logging.FromContext(uc.ctx).With().Str("component", "scroll-activity").Logger()

	uc.mu.Lock()
	uc.settings = s
	uc.mu.Unlock()

	log.Debug().
		Int("showDelayMs", s.ShowDelayMs).
		Int("hideDelayMs", s.HideDelayMs).
		Msg("settings swapped")
}

// Settings returns the current settings snapshot.
func (uc *ScrollActivityUseCase) Settings() entity.ScrollbarSettings {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.settings
}

// Teardown disconnects every listener, cancels every pending timer and
// strips the indicator class from containers still marked active. Calling it
// again is a no-op; timer callbacks still in flight find no state and touch
// nothing.
func (uc *ScrollActivityUseCase) Teardown() {
	log := logging.FromContext(uc.ctx).With().Str("component", "scroll-activity").Logger()

	uc.mu.Lock()
	var deactivated []port.ContainerID
	for id, st := range uc.activity {
		if st.showTimer != nil {
			st.showTimer.Cancel()
		}
		if st.hideTimer != nil {
			st.hideTimer.Cancel()
		}
		if st.active {
			if reg := uc.regs[id]; reg != nil {
				reg.container.RemoveCssClass(ActiveClass)
			}
			deactivated = append(deactivated, id)
		}
	}
	uc.activity = make(map[port.ContainerID]*activityState)

	listeners := 0
	for _, reg := range uc.regs {
		if reg.sub != nil {
			reg.sub.Disconnect()
			listeners++
		}
	}
	uc.regs = make(map[port.ContainerID]*registration)
	uc.provider = nil
	uc.initialized = false
	fn := uc.onStateChange
	uc.mu.Unlock()

	if listeners > 0 || len(deactivated) > 0 {
		log.Debug().Int("listeners", listeners).Int("deactivated", len(deactivated)).Msg("controller torn down")
	}
	if fn != nil {
		for _, id := range deactivated {
			fn(id, false)
		}
	}
}

// clearActivityLocked cancels and removes the activity entry for id and
// reports whether the container was active. Caller holds uc.mu.
func (uc *ScrollActivityUseCase) clearActivityLocked(id port.ContainerID) bool {
	st := uc.activity[id]
	if st == nil {
		return false
	}
	if st.showTimer != nil {
		st.showTimer.Cancel()
	}
	if st.hideTimer != nil {
		st.hideTimer.Cancel()
	}
	delete(uc.activity, id)
	return st.active
}

// IsActive reports whether the container currently carries the indicator.
func (uc *ScrollActivityUseCase) IsActive(id port.ContainerID) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	st := uc.activity[id]
	return st != nil && st.active
}

// ContainerCount returns the number of registered containers.
func (uc *ScrollActivityUseCase) ContainerCount() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.regs)
}
