package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/driftnote/scrollkit/internal/domain/entity"
	"github.com/driftnote/scrollkit/internal/logging"
	"github.com/invopop/jsonschema"
)

// SettingsSchemaUseCase renders the JSON schema for the settings record.
// Host settings dialogs build their forms from it, and editors use the copy
// written next to the config file to validate hand edits.
type SettingsSchemaUseCase struct{}

// NewSettingsSchemaUseCase creates a new schema generation use case.
func NewSettingsSchemaUseCase() *SettingsSchemaUseCase {
	return &SettingsSchemaUseCase{}
}

// Execute reflects the settings record into pretty-printed JSON schema bytes.
func (uc *SettingsSchemaUseCase) Execute(ctx context.Context) ([]byte, error) {
	log := logging.FromContext(ctx)

	r := new(jsonschema.Reflector)
	schema := r.Reflect(&entity.Config{})

	schema.ID = "https://github.com/driftnote/scrollkit/scrollkit.schema.json"
	schema.Title = "scrollkit settings"
	schema.Description = "Settings for the scrollkit plugin suite: auto-hiding scrollbars and fixed-width tab headers"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal settings schema: %w", err)
	}

	log.Debug().Int("bytes", len(data)).Msg("settings schema generated")
	return data, nil
}
