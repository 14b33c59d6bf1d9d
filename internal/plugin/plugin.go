// Package plugin defines the host-facing contract for the suite's plugins
// and the manager that drives their lifecycles.
package plugin

import (
	"context"

	"github.com/driftnote/scrollkit/internal/application/port"
	"github.com/driftnote/scrollkit/internal/domain/entity"
)

// Host is the capability bundle the embedding application hands to plugins
// on activation.
type Host interface {
	// Config returns the resolved settings record at activation time.
	Config() entity.Config

	// Scheduler returns the timer scheduler plugins schedule through.
	Scheduler() port.Scheduler

	// StyleSinks returns the styling surfaces that should receive this
	// plugin's generated CSS variables. Every call returns sinks owned by
	// the caller alone, so plugins replace only their own blocks.
	StyleSinks() []port.StyleSink

	// ContainerProvider returns the host's scrollable-panel discovery.
	ContainerProvider() port.ContainerProvider
}

// Plugin is one installable behavior unit.
type Plugin interface {
	// Name identifies the plugin. Names are unique within a manager.
	Name() string

	// Activate wires the plugin into the host. Activating a plugin that
	// is already active is a no-op, not an error.
	Activate(ctx context.Context, host Host) error

	// Deactivate tears the plugin down, leaving no listeners, timers or
	// style variables behind. Deactivating twice is a no-op.
	Deactivate(ctx context.Context) error

	// OnConfigChange pushes a new validated settings record into the
	// plugin while it is active. Inactive plugins ignore it.
	OnConfigChange(ctx context.Context, cfg entity.Config) error
}
