// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"os"

	"github.com/driftnote/scrollkit/internal/cli/styles"
	"github.com/driftnote/scrollkit/internal/domain/build"
	"github.com/driftnote/scrollkit/internal/domain/entity"
	"github.com/driftnote/scrollkit/internal/infrastructure/config"
	"github.com/driftnote/scrollkit/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	// Store is nil when the settings directory cannot be resolved;
	// commands then run against in-memory defaults.
	Store     *config.Store
	Config    entity.Config
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	theme := styles.NewTheme()

	// Keep command output clean unless the user asks for logs.
	logLevel := "warn"
	if envLevel := os.Getenv("SCROLLKIT_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logger := logging.NewFromConfigValues(logLevel, os.Getenv("SCROLLKIT_LOG_FORMAT"))
	ctx := logging.WithContext(context.Background(), logger)

	app := &App{
		Theme: theme,
		ctx:   ctx,
	}
	app.Store, app.Config = loadSettings(ctx)

	return app, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadSettings opens the settings store, falling back to built-in defaults
// when the store cannot be created or read.
func loadSettings(ctx context.Context) (*config.Store, entity.Config) {
	store, err := config.New()
	if err != nil {
		return nil, entity.DefaultConfig()
	}

	cfg, err := store.Load(ctx)
	if err != nil {
		_ = store.Close()
		return nil, entity.DefaultConfig()
	}

	return store, cfg
}
