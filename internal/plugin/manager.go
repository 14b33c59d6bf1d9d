package plugin

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/driftnote/scrollkit/internal/domain/entity"
	"github.com/driftnote/scrollkit/internal/logging"
)

// Manager owns plugin registration and fans lifecycle events out to them.
type Manager struct {
	mu      sync.Mutex
	host    Host
	plugins []Plugin
	active  map[string]bool
}

// NewManager creates a manager that activates plugins against the given host.
func NewManager(host Host) *Manager {
	return &Manager{
		host:   host,
		active: make(map[string]bool),
	}
}

// Register adds a plugin. Registering two plugins with the same name is a
// programming error and is rejected.
func (m *Manager) Register(p Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.plugins {
		if existing.Name() == p.Name() {
			return fmt.Errorf("plugin %q already registered", p.Name())
		}
	}
	m.plugins = append(m.plugins, p)
	return nil
}

// ActivateAll activates registered plugins in registration order. A failing
// plugin does not stop the rest; the errors come back joined. Plugins that
// are already active are skipped.
func (m *Manager) ActivateAll(ctx context.Context) error {
	log := logging.FromContext(ctx).With().Str("component", "plugins").Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for _, p := range m.plugins {
		if m.active[p.Name()] {
			continue
		}
		if err := p.Activate(ctx, m.host); err != nil {
			log.Error().Err(err).Str("plugin", p.Name()).Msg("plugin activation failed")
			errs = append(errs, fmt.Errorf("activate %s: %w", p.Name(), err))
			continue
		}
		m.active[p.Name()] = true
		log.Debug().Str("plugin", p.Name()).Msg("plugin activated")
	}
	return errors.Join(errs...)
}

// DeactivateAll deactivates active plugins in reverse registration order.
func (m *Manager) DeactivateAll(ctx context.Context) error {
	log := logging.FromContext(ctx).With().Str("component", "plugins").Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for i := len(m.plugins) - 1; i >= 0; i-- {
		p := m.plugins[i]
		if !m.active[p.Name()] {
			continue
		}
		if err := p.Deactivate(ctx); err != nil {
			log.Error().Err(err).Str("plugin", p.Name()).Msg("plugin deactivation failed")
			errs = append(errs, fmt.Errorf("deactivate %s: %w", p.Name(), err))
		}
		delete(m.active, p.Name())
		log.Debug().Str("plugin", p.Name()).Msg("plugin deactivated")
	}
	return errors.Join(errs...)
}

// OnConfigChange pushes a new settings record into every active plugin.
func (m *Manager) OnConfigChange(ctx context.Context, cfg entity.Config) error {
	log := logging.FromContext(ctx).With().Str("component", "plugins").Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for _, p := range m.plugins {
		if !m.active[p.Name()] {
			continue
		}
		if err := p.OnConfigChange(ctx, cfg); err != nil {
			log.Error().Err(err).Str("plugin", p.Name()).Msg("plugin rejected config change")
			errs = append(errs, fmt.Errorf("configure %s: %w", p.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// Active reports whether the named plugin is currently active.
func (m *Manager) Active(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active[name]
}
