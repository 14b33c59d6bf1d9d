// Package config persists the plugin suite settings as a TOML file under
// the scrollkit config directory, with Viper handling defaults, environment
// overrides, and live reload on external edits.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/driftnote/scrollkit/internal/application/port"
	"github.com/driftnote/scrollkit/internal/application/usecase"
	"github.com/driftnote/scrollkit/internal/domain/entity"
	"github.com/driftnote/scrollkit/internal/domain/validation"
	"github.com/driftnote/scrollkit/internal/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Store is the Viper-backed settings store. A missing file is created with
// defaults on first load; a corrupt file falls back to defaults so the host
// keeps running. External edits reach Watch callbacks, saves made through
// this store do not.
type Store struct {
	viper          *viper.Viper
	mu             sync.RWMutex
	cfg            entity.Config
	callbacks      []func(entity.Config)
	dir            string
	loaded         bool
	watching       bool
	skipNextReload bool
	closed         bool
}

var _ port.SettingsStore = (*Store)(nil)

// New creates a store rooted at the XDG config directory.
func New() (*Store, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return NewAt(dir)
}

// NewAt creates a store rooted at dir.
func NewAt(dir string) (*Store, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	// Environment variable support
	v.SetEnvPrefix("SCROLLKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"scrollbars.show_delay_ms": "SCROLLBARS_SHOW_DELAY_MS",
		"scrollbars.hide_delay_ms": "SCROLLBARS_HIDE_DELAY_MS",
		"scrollbars.thumb_color":   "SCROLLBARS_THUMB_COLOR",
		"scrollbars.thumb_width":   "SCROLLBARS_THUMB_WIDTH",
		"tabs.header_width":        "TABS_HEADER_WIDTH",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, "SCROLLKIT_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Store{
		viper: v,
		dir:   dir,
	}, nil
}

// Load reads the settings file, creating it with defaults when missing.
// Unreadable or invalid files produce a warning and the defaults; they are
// never an error for the caller.
func (s *Store) Load(ctx context.Context) (entity.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logging.FromContext(ctx).With().Str("component", "settings-store").Logger()

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return entity.Config{}, fmt.Errorf("failed to create config directory: %w", err)
	}

	s.setDefaults()

	if err := s.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Warn().Err(err).Msg("Settings file is unreadable, falling back to defaults")
			s.cfg = entity.DefaultConfig()
			s.loaded = true
			return s.cfg, nil
		}

		if err := s.createDefaultFile(ctx); err != nil {
			return entity.Config{}, err
		}
		// Re-read so Viper tracks the file for WriteConfig and WatchConfig.
		if err := s.viper.ReadInConfig(); err != nil {
			return entity.Config{}, fmt.Errorf("failed to read created settings file: %w", err)
		}
	}

	cfg, err := s.decodeLocked()
	if err != nil {
		return entity.Config{}, err
	}

	if err := validation.ValidateConfig(cfg); err != nil {
		log.Warn().Err(err).Str("file", s.viper.ConfigFileUsed()).
			Msg("Settings file has invalid values, falling back to defaults")
		cfg = entity.DefaultConfig()
	}

	s.cfg = cfg
	s.loaded = true

	log.Debug().
		Str("file", s.viper.ConfigFileUsed()).
		Int("show_delay_ms", cfg.Scrollbars.ShowDelayMs).
		Int("hide_delay_ms", cfg.Scrollbars.HideDelayMs).
		Msg("Settings loaded")
	return cfg, nil
}

// Save validates and persists the full settings record. Invalid records are
// rejected without touching the file.
func (s *Store) Save(ctx context.Context, cfg entity.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logging.FromContext(ctx).With().Str("component", "settings-store").Logger()

	if err := validation.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("settings validation failed: %w", err)
	}

	s.viper.Set("scrollbars.show_delay_ms", cfg.Scrollbars.ShowDelayMs)
	s.viper.Set("scrollbars.hide_delay_ms", cfg.Scrollbars.HideDelayMs)
	s.viper.Set("scrollbars.thumb_color", cfg.Scrollbars.ThumbColor)
	s.viper.Set("scrollbars.thumb_width", cfg.Scrollbars.ThumbWidth)
	s.viper.Set("tabs.header_width", cfg.Tabs.HeaderWidth)

	// The write below lands as an fsnotify event on our own watcher; flag it
	// so the watcher resyncs Viper instead of reloading and notifying.
	if s.watching {
		s.skipNextReload = true
	}

	var err error
	if s.viper.ConfigFileUsed() == "" {
		err = s.viper.WriteConfigAs(filepath.Join(s.dir, configName+".toml"))
	} else {
		err = s.viper.WriteConfig()
	}
	if err != nil {
		s.skipNextReload = false
		return fmt.Errorf("failed to write settings: %w", err)
	}

	s.cfg = cfg
	log.Debug().Str("file", s.viper.ConfigFileUsed()).Msg("Settings saved")
	return nil
}

// Current returns the most recently loaded or saved settings record.
func (s *Store) Current() entity.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Watch registers a callback for external settings changes and starts the
// file watcher on first use. Load must have run first.
func (s *Store) Watch(fn func(entity.Config)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("settings store is closed")
	}
	if !s.loaded {
		return fmt.Errorf("watch requires a prior load")
	}

	s.callbacks = append(s.callbacks, fn)

	if s.watching {
		return nil
	}

	s.viper.WatchConfig()
	s.viper.OnConfigChange(func(e fsnotify.Event) {
		s.handleConfigChange(e)
	})
	s.watching = true
	return nil
}

// Close drops all change callbacks. Viper offers no way to stop its file
// watcher, so the goroutine keeps running; events arriving after Close find
// no callbacks and mutate nothing.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.callbacks = nil
	return nil
}

// ConfigFilePath returns the path of the settings file being used.
func (s *Store) ConfigFilePath() string {
	return s.viper.ConfigFileUsed()
}

// SchemaFilePath returns the path where the JSON schema is written.
func (s *Store) SchemaFilePath() string {
	return filepath.Join(s.dir, schemaName)
}

func (s *Store) handleConfigChange(e fsnotify.Event) {
	log := logging.NewFromEnv()
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("Settings file change detected")

	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return
	}

	// Change triggered by our own Save: the in-memory record is already
	// correct, Viper just needs to resync its file state.
	if s.skipNextReload {
		s.skipNextReload = false
		if err := s.viper.ReadInConfig(); err != nil {
			log.Warn().Err(err).Msg("Failed to resync settings after save")
		}
		s.mu.Unlock()
		return
	}

	cfg, err := s.reloadLocked()
	if err != nil {
		log.Warn().Err(err).Msg("Ignoring settings change that failed to load")
		s.mu.Unlock()
		return
	}

	s.cfg = cfg
	callbacks := make([]func(entity.Config), len(s.callbacks))
	copy(callbacks, s.callbacks)
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(cfg)
	}
}

// reloadLocked re-reads and validates the settings file. An invalid record
// is an error so the prior record stays in place.
func (s *Store) reloadLocked() (entity.Config, error) {
	if err := s.viper.ReadInConfig(); err != nil {
		return entity.Config{}, err
	}

	cfg, err := s.decodeLocked()
	if err != nil {
		return entity.Config{}, err
	}

	if err := validation.ValidateConfig(cfg); err != nil {
		return entity.Config{}, fmt.Errorf("settings validation failed: %w", err)
	}

	return cfg, nil
}

func (s *Store) decodeLocked() (entity.Config, error) {
	var cfg entity.Config
	if err := s.viper.Unmarshal(&cfg); err != nil {
		return entity.Config{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return cfg.MergeOverDefaults(), nil
}

// setDefaults sets default settings values in Viper.
func (s *Store) setDefaults() {
	defaults := entity.DefaultConfig()

	s.viper.SetDefault("scrollbars.show_delay_ms", defaults.Scrollbars.ShowDelayMs)
	s.viper.SetDefault("scrollbars.hide_delay_ms", defaults.Scrollbars.HideDelayMs)
	s.viper.SetDefault("scrollbars.thumb_color", defaults.Scrollbars.ThumbColor)
	s.viper.SetDefault("scrollbars.thumb_width", defaults.Scrollbars.ThumbWidth)
	s.viper.SetDefault("tabs.header_width", defaults.Tabs.HeaderWidth)
}

// createDefaultFile writes the default settings file plus the JSON schema
// editors use for completion. A schema failure is not fatal.
func (s *Store) createDefaultFile(ctx context.Context) error {
	log := logging.FromContext(ctx).With().Str("component", "settings-store").Logger()

	path := filepath.Join(s.dir, configName+".toml")
	if err := WriteConfigFile(entity.DefaultConfig(), path); err != nil {
		return fmt.Errorf("failed to create default settings file: %w", err)
	}

	if err := s.writeSchemaFile(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to write settings schema")
	}

	log.Info().Str("file", path).Msg("Created default settings file")
	return nil
}

func (s *Store) writeSchemaFile(ctx context.Context) error {
	data, err := usecase.NewSettingsSchemaUseCase().Execute(ctx)
	if err != nil {
		return err
	}
	return os.WriteFile(s.SchemaFilePath(), data, filePerm)
}
