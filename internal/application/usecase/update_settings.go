package usecase

import (
	"context"
	"fmt"

	"github.com/driftnote/scrollkit/internal/application/port"
	"github.com/driftnote/scrollkit/internal/domain/entity"
	"github.com/driftnote/scrollkit/internal/domain/validation"
	"github.com/driftnote/scrollkit/internal/logging"
)

// UpdateSettingsUseCase validates and persists a replacement settings record.
type UpdateSettingsUseCase struct {
	store port.SettingsStore
}

// NewUpdateSettingsUseCase creates a new settings update use case.
func NewUpdateSettingsUseCase(store port.SettingsStore) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{store: store}
}

// UpdateSettingsInput carries the full replacement record. Settings are
// replaced wholesale; there is no partial-field mutation.
type UpdateSettingsInput struct {
	Config entity.Config
}

// Execute rejects invalid records before anything is written, so a failed
// update always leaves the stored record untouched.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (entity.Config, error) {
	log := logging.FromContext(ctx).With().Str("component", "settings").Logger()

	if err := validation.ValidateConfig(input.Config); err != nil {
		log.Warn().Err(err).Msg("settings update rejected")
		return entity.Config{}, err
	}

	if err := uc.store.Save(ctx, input.Config); err != nil {
		log.Error().Err(err).Msg("failed to persist settings")
		return entity.Config{}, fmt.Errorf("save settings: %w", err)
	}

	log.Info().
		Int("showDelayMs", input.Config.Scrollbars.ShowDelayMs).
		Int("hideDelayMs", input.Config.Scrollbars.HideDelayMs).
		Msg("settings saved")
	return input.Config, nil
}
