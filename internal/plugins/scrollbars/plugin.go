// Package scrollbars implements the auto-hiding scrollbar plugin: scroll
// activity on registered panels drives the scroll-active class, and the
// thumb color/width settings become CSS variables.
package scrollbars

import (
	"context"
	"sync"

	"github.com/driftnote/scrollkit/internal/application/usecase"
	"github.com/driftnote/scrollkit/internal/domain/entity"
	"github.com/driftnote/scrollkit/internal/logging"
	"github.com/driftnote/scrollkit/internal/plugin"
)

// Name is the plugin's registration name.
const Name = "scrollbars"

// Plugin wires the scroll-activity controller and the style pipeline into
// a host.
type Plugin struct {
	mu     sync.Mutex
	ctrl   *usecase.ScrollActivityUseCase
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

// Activate builds the controller from the host's collaborators, subscribes
// to every discovered container and applies the styling variables.
func (p *Plugin) Activate(ctx context.Context, host plugin.Host) error {
	ctx = logging.WithPlugin(ctx, Name)
	log := logging.FromContext(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active {
		log.Debug().Msg("already active")
		return nil
	}

	cfg := host.Config()
	ctrl := usecase.NewScrollActivityUseCase(ctx, host.Scheduler(), cfg.Scrollbars)
	if err := ctrl.Initialize(host.ContainerProvider()); err != nil {
		return err
	}

	styles := usecase.NewApplyStylesUseCase(host.StyleSinks()...)
	if err := styles.Execute(ctx, usecase.ApplyStylesInput{CSS: usecase.GenerateScrollbarCSSVars(cfg.Scrollbars)}); err != nil {
		// Scroll detection works without custom styling; keep going.
		log.Warn().Err(err).Msg("styling variables not applied")
	}

	p.ctrl = ctrl
	p.styles = styles
	p.active = true
	log.Debug().Int("containers", ctrl.ContainerCount()).Msg("activated")
	return nil
}

// Deactivate tears the controller down and clears the styling variables.
func (p *Plugin) Deactivate(ctx context.Context) error {
	ctx = logging.WithPlugin(ctx, Name)
	log := logging.FromContext(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return nil
	}

	p.ctrl.Teardown()
	err := p.styles.Clear(ctx)

	p.ctrl = nil
	p.styles = nil
	p.active = false
	log.Debug().Msg("deactivated")
	return err
}

// OnConfigChange swaps the controller's settings snapshot and re-applies
// the styling variables. In-flight timers keep their deadlines.
func (p *Plugin) OnConfigChange(ctx context.Context, cfg entity.Config) error {
	ctx = logging.WithPlugin(ctx, Name)

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return nil
	}

	p.ctrl.UpdateSettings(cfg.Scrollbars)
	return p.styles.Execute(ctx, usecase.ApplyStylesInput{CSS: usecase.GenerateScrollbarCSSVars(cfg.Scrollbars)})
}

// Rescan re-invokes the host's container discovery, picking up panels that
// opened since activation.
func (p *Plugin) Rescan(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return nil
	}
	return p.ctrl.Refresh()
}

// Controller exposes the live controller so event bridges can feed scroll
// events and register containers discovered at runtime. Nil while inactive.
func (p *Plugin) Controller() *usecase.ScrollActivityUseCase {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctrl
}
