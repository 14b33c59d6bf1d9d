package port

import (
	"context"

	"github.com/driftnote/scrollkit/internal/domain/entity"
)

// SettingsStore persists plugin settings and reports external edits.
type SettingsStore interface {
	// Load returns the stored settings merged over defaults. A missing
	// store is not an error; implementations return defaults instead.
	Load(ctx context.Context) (entity.Config, error)

	// Save validates and persists the full settings record.
	Save(ctx context.Context, cfg entity.Config) error

	// Watch registers a callback invoked with the freshly loaded settings
	// whenever the backing store changes outside this process. Saves made
	// through this store do not trigger the callback.
	Watch(fn func(entity.Config)) error

	// Close stops watching and releases the store.
	Close() error
}
