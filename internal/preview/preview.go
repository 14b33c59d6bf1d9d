// Package preview hosts the demo window behind `scrollkit preview`: a GTK
// window with a WebKit view, both plugins activated against it, and live
// reload of the settings file.
package preview

import (
	"context"

	"github.com/bnema/puregotk-webkit/webkit"
	"github.com/jwijenbergh/puregotk/v4/gio"
	"github.com/jwijenbergh/puregotk/v4/glib"
	"github.com/jwijenbergh/puregotk/v4/gtk"

	"github.com/driftnote/scrollkit/internal/application/port"
	"github.com/driftnote/scrollkit/internal/domain/entity"
	"github.com/driftnote/scrollkit/internal/infrastructure/config"
	gtkinfra "github.com/driftnote/scrollkit/internal/infrastructure/gtk"
	webkitinfra "github.com/driftnote/scrollkit/internal/infrastructure/webkit"
	"github.com/driftnote/scrollkit/internal/logging"
	"github.com/driftnote/scrollkit/internal/plugin"
	"github.com/driftnote/scrollkit/internal/plugins/scrollbars"
	"github.com/driftnote/scrollkit/internal/plugins/tabwidth"
)

const (
	defaultWidth  = 1100
	defaultHeight = 720
	windowTitle   = "Scrollkit Preview"
)

// Options configures the preview window.
type Options struct {
	// URI is loaded instead of the built-in demo page when set.
	URI string
}

// Preview owns the window, the plugin manager, and the settings store for
// one preview run.
type Preview struct {
	opts Options

	store   *config.Store
	manager *plugin.Manager
	bridge  *webkitinfra.Bridge
}

// Run starts the GTK application and blocks until the window closes.
// Returns the exit code.
func Run(ctx context.Context, args []string, opts Options) int {
	log := logging.FromContext(ctx)

	p := &Preview{opts: opts}

	gtkApp := gtk.NewApplication(nil, gio.GApplicationFlagsNoneValue)
	if gtkApp == nil {
		log.Error().Msg("failed to create GTK application")
		return 1
	}
	defer gtkApp.Unref()

	activateCb := func(_ gio.Application) {
		p.onActivate(ctx, gtkApp)
	}
	gtkApp.ConnectActivate(&activateCb)

	shutdownCb := func(_ gio.Application) {
		p.onShutdown(ctx)
	}
	gtkApp.ConnectShutdown(&shutdownCb)

	log.Info().Msg("starting preview window")
	return gtkApp.Run(len(args), args)
}

// onActivate builds the window and wires the plugins into the view.
func (p *Preview) onActivate(ctx context.Context, gtkApp *gtk.Application) {
	log := logging.FromContext(ctx)
	logging.InstallGLibLogHandler(ctx, *log, false)

	cfg := p.loadSettings(ctx)

	win := gtk.NewApplicationWindow(gtkApp)
	if win == nil {
		log.Error().Msg("failed to create window")
		return
	}
	title := windowTitle
	win.SetTitle(&title)
	win.SetDefaultSize(defaultWidth, defaultHeight)

	view := webkit.NewWebView()
	if view == nil {
		log.Error().Msg("failed to create webkit webview")
		return
	}
	ucm := view.GetUserContentManager()
	if ucm == nil {
		log.Error().Msg("webview has no user content manager")
		return
	}

	// Both styling surfaces: GTK display and the page's user stylesheet.
	// Built per plugin so each plugin's provider and sheet stay its own.
	display := win.GetDisplay()
	sinks := func() []port.StyleSink {
		return []port.StyleSink{
			gtkinfra.NewDisplaySink(display),
			webkitinfra.NewStylesheetSink(ucm),
		}
	}

	// The webview widget doubles as a native scroll container, so the GTK
	// event-controller path is live alongside the page regions.
	viewContainer := gtkinfra.NewWidgetContainer(&view.Widget, "webview")

	host := plugin.NewStaticHost(
		cfg,
		gtkinfra.NewMainLoopScheduler(),
		port.StaticContainers(viewContainer),
		sinks,
	)

	p.manager = plugin.NewManager(host)
	sb := scrollbars.New()
	if err := p.manager.Register(sb); err != nil {
		log.Error().Err(err).Msg("failed to register scrollbars plugin")
		return
	}
	if err := p.manager.Register(tabwidth.New()); err != nil {
		log.Error().Err(err).Msg("failed to register tabwidth plugin")
		return
	}
	if err := p.manager.ActivateAll(ctx); err != nil {
		log.Error().Err(err).Msg("plugin activation failed")
		return
	}

	// Page scroll regions feed the scrollbars controller as they are
	// discovered.
	p.bridge = webkitinfra.NewBridge(ctx, ucm, webkitinfra.NewWebViewRunner(view), sb.Controller())
	if err := p.bridge.Attach(ctx); err != nil {
		log.Error().Err(err).Msg("failed to attach page bridge")
		return
	}

	p.watchSettings(ctx)

	win.SetChild(&view.Widget)
	win.Present()

	if p.opts.URI != "" {
		view.LoadUri(p.opts.URI)
		log.Info().Str("uri", p.opts.URI).Msg("preview loading page")
		return
	}
	view.LoadHtml(demoHTML, nil)
	log.Info().Msg("preview loaded demo page")
}

// loadSettings opens the settings store, falling back to defaults when it
// cannot be created or read. The preview window must open either way.
func (p *Preview) loadSettings(ctx context.Context) entity.Config {
	log := logging.FromContext(ctx)

	store, err := config.New()
	if err != nil {
		log.Warn().Err(err).Msg("settings store unavailable, using defaults")
		return entity.DefaultConfig()
	}

	cfg, err := store.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("settings unreadable, using defaults")
		_ = store.Close()
		return entity.DefaultConfig()
	}

	p.store = store
	return cfg
}

// watchSettings follows external edits to the settings file. Reloads arrive
// on the watcher goroutine and are bounced onto the GTK main loop before
// they touch any widget.
func (p *Preview) watchSettings(ctx context.Context) {
	log := logging.FromContext(ctx)
	if p.store == nil {
		return
	}

	err := p.store.Watch(func(cfg entity.Config) {
		cb := glib.SourceFunc(func(_ uintptr) bool {
			if err := p.manager.OnConfigChange(ctx, cfg); err != nil {
				log.Warn().Err(err).Msg("settings change not applied")
			}
			return false
		})
		glib.IdleAdd(&cb, 0)
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to watch settings file")
		return
	}

	log.Debug().Msg("settings watcher initialized")
}

// onShutdown tears the plugins down so no timers or style blocks outlive
// the window.
func (p *Preview) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)

	if p.bridge != nil {
		p.bridge.Detach(ctx)
	}
	if p.manager != nil {
		if err := p.manager.DeactivateAll(ctx); err != nil {
			log.Warn().Err(err).Msg("plugin deactivation failed")
		}
	}
	if p.store != nil {
		_ = p.store.Close()
	}

	log.Debug().Msg("preview shut down")
}
