// Package tabwidth implements the fixed-width tab header plugin. It is
// style-only: the configured width becomes a CSS variable the host's tab
// header rules consume, and clearing it restores the host default.
package tabwidth

import (
	"context"
	"sync"

	"github.com/driftnote/scrollkit/internal/application/usecase"
	"github.com/driftnote/scrollkit/internal/domain/entity"
	"github.com/driftnote/scrollkit/internal/logging"
	"github.com/driftnote/scrollkit/internal/plugin"
)

// Name is the plugin's registration name.
const Name = "tabwidth"

// Plugin reflects the tab header width setting into a CSS variable.
type Plugin struct {
	mu     sync.Mutex
	styles *usecase.ApplyStylesUseCase
	active bool
}

var _ plugin.Plugin = (*Plugin)(nil)

// New creates the plugin in its inactive state.
func New() *Plugin {
	return &Plugin{}
}

// Name implements plugin.Plugin.
func (p *Plugin) Name() string { return Name }

// Activate applies the width variable to the host's style sinks.
func (p *Plugin) Activate(ctx context.Context, host plugin.Host) error {
	ctx = logging.WithPlugin(ctx, Name)
	log := logging.FromContext(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active {
		log.Debug().Msg("already active")
		return nil
	}

	styles := usecase.NewApplyStylesUseCase(host.StyleSinks()...)
	if err := styles.Execute(ctx, usecase.ApplyStylesInput{CSS: usecase.GenerateTabCSSVars(host.Config().Tabs)}); err != nil {
		return err
	}

	p.styles = styles
	p.active = true
	log.Debug().Int("headerWidth", host.Config().Tabs.HeaderWidth).Msg("activated")
	return nil
}

// Deactivate clears the width variable.
func (p *Plugin) Deactivate(ctx context.Context) error {
	ctx = logging.WithPlugin(ctx, Name)

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return nil
	}

	err := p.styles.Clear(ctx)
	p.styles = nil
	p.active = false
	logging.FromContext(ctx).Debug().Msg("deactivated")
	return err
}

// OnConfigChange re-applies the variable from the new record.
func (p *Plugin) OnConfigChange(ctx context.Context, cfg entity.Config) error {
	ctx = logging.WithPlugin(ctx, Name)

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return nil
	}
	return p.styles.Execute(ctx, usecase.ApplyStylesInput{CSS: usecase.GenerateTabCSSVars(cfg.Tabs)})
}
