package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context.
// If no logger is found, returns a disabled logger (no-op).
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field.
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithPlugin creates a child logger with a plugin field.
func WithPlugin(ctx context.Context, plugin string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("plugin", plugin).Logger()
	return WithContext(ctx, childLogger)
}

// WithContainer creates a child logger with a container field.
func WithContainer(ctx context.Context, containerID string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("container", containerID).Logger()
	return WithContext(ctx, childLogger)
}
