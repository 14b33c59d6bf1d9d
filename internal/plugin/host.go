package plugin

import (
	"github.com/driftnote/scrollkit/internal/application/port"
	"github.com/driftnote/scrollkit/internal/domain/entity"
)

// SinkFactory builds the style sinks for one plugin activation. A host
// hands every plugin its own sink instances; the display or content manager
// underneath merges the per-plugin blocks, so no plugin can replace another
// plugin's variables.
type SinkFactory func() []port.StyleSink

// StaticSinks adapts fixed sink instances to a SinkFactory, for hosts that
// activate at most one style-writing plugin. Tests mostly use this.
func StaticSinks(sinks ...port.StyleSink) SinkFactory {
	return func() []port.StyleSink {
		out := make([]port.StyleSink, len(sinks))
		copy(out, sinks)
		return out
	}
}

type staticHost struct {
	cfg      entity.Config
	sched    port.Scheduler
	sinks    SinkFactory
	provider port.ContainerProvider
}

// NewStaticHost bundles fixed collaborators into a Host. Embedders with a
// live widget tree implement Host themselves; this covers the CLI preview
// and tests.
func NewStaticHost(cfg entity.Config, scheduler port.Scheduler, provider port.ContainerProvider, sinks SinkFactory) Host {
	return &staticHost{
		cfg:      cfg,
		sched:    scheduler,
		sinks:    sinks,
		provider: provider,
	}
}

func (h *staticHost) Config() entity.Config { return h.cfg }

func (h *staticHost) Scheduler() port.Scheduler { return h.sched }

func (h *staticHost) StyleSinks() []port.StyleSink {
	if h.sinks == nil {
		return nil
	}
	return h.sinks()
}

func (h *staticHost) ContainerProvider() port.ContainerProvider { return h.provider }
