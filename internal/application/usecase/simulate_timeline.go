package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/driftnote/scrollkit/internal/application/port"
	"github.com/driftnote/scrollkit/internal/domain/entity"
	"github.com/driftnote/scrollkit/internal/domain/validation"
	"github.com/driftnote/scrollkit/internal/logging"
)

// SteppableScheduler is a scheduler whose clock only moves when the caller
// advances it. The simulation drives one explicitly instead of waiting out
// real delays.
type SteppableScheduler interface {
	port.Scheduler
	Advance(d time.Duration)
}

// Transition is one observed state change of the simulated container.
type Transition struct {
	At     time.Duration
	Region string
	Active bool
}

// SimulateTimelineUseCase replays a scroll timeline against a real
// controller on a stepped clock and records every transition. It exists so
// delay settings can be reasoned about without scrolling a live window.
type SimulateTimelineUseCase struct{}

// NewSimulateTimelineUseCase creates a new timeline simulation use case.
func NewSimulateTimelineUseCase() *SimulateTimelineUseCase {
	return &SimulateTimelineUseCase{}
}

// SimulateTimelineInput describes the timeline to replay.
type SimulateTimelineInput struct {
	// Settings drives the controller under simulation. Must be valid.
	Settings entity.ScrollbarSettings

	// Events are scroll event offsets from t=0. Order does not matter;
	// negative offsets are rejected.
	Events []time.Duration

	// Horizon is how far the clock runs in total. Zero means "until the
	// last burst settles". A horizon short enough to cut a burst off
	// ends the timeline with the forced idle of teardown.
	Horizon time.Duration

	// Scheduler is the stepped clock to drive, typically sched.NewManual.
	Scheduler SteppableScheduler
}

type simulatedContainer struct {
	id      port.ContainerID
	classes map[string]bool
}

func (c *simulatedContainer) ID() port.ContainerID { return c.id }

func (c *simulatedContainer) AddCssClass(class string) { c.classes[class] = true }

func (c *simulatedContainer) RemoveCssClass(class string) { delete(c.classes, class) }

func (c *simulatedContainer) HasCssClass(class string) bool { return c.classes[class] }

func (c *simulatedContainer) ConnectScroll(func()) (port.Subscription, error) {
	return simSubscription{}, nil
}

type simSubscription struct{}

func (simSubscription) Disconnect() {}

// Execute replays the timeline and returns the transitions in order.
func (uc *SimulateTimelineUseCase) Execute(ctx context.Context, input SimulateTimelineInput) ([]Transition, error) {
	log := logging.FromContext(ctx).With().Str("component", "simulate").Logger()

	if input.Scheduler == nil {
		return nil, fmt.Errorf("simulate: nil scheduler")
	}
	if errs := validation.ValidateScrollbarSettings("scrollbars", input.Settings); len(errs) > 0 {
		return nil, fmt.Errorf("simulate: invalid settings: %s", errs[0])
	}

	offsets := slices.Clone(input.Events)
	slices.Sort(offsets)
	if len(offsets) > 0 && offsets[0] < 0 {
		return nil, fmt.Errorf("simulate: negative event offset %v", offsets[0])
	}

	start := input.Scheduler.Now()
	ctrl := NewScrollActivityUseCase(ctx, input.Scheduler, input.Settings)

	var out []Transition
	ctrl.SetOnStateChange(func(id port.ContainerID, active bool) {
		out = append(out, Transition{
			At:     input.Scheduler.Now().Sub(start),
			Region: string(id),
			Active: active,
		})
	})

	pane := &simulatedContainer{id: "pane-1", classes: map[string]bool{}}
	if err := ctrl.AddContainer(pane); err != nil {
		return nil, err
	}

	elapsed := time.Duration(0)
	for _, off := range offsets {
		if off > elapsed {
			input.Scheduler.Advance(off - elapsed)
			elapsed = off
		}
		ctrl.OnScroll(pane.id)
	}

	horizon := input.Horizon
	if horizon <= 0 {
		horizon = elapsed + input.Settings.ShowDelay() + input.Settings.HideDelay()
	}
	if horizon > elapsed {
		input.Scheduler.Advance(horizon - elapsed)
	}

	ctrl.Teardown()

	log.Debug().
		Int("events", len(offsets)).
		Int("transitions", len(out)).
		Dur("horizon", horizon).
		Msg("timeline simulated")
	return out, nil
}
