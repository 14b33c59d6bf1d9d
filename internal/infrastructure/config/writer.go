package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/driftnote/scrollkit/internal/domain/entity"
	"github.com/pelletier/go-toml/v2"
)

// WriteConfigFile renders the settings record as indented TOML and writes
// it to path. Sections follow struct definition order, so repeated writes
// of the same record produce identical files.
func WriteConfigFile(cfg entity.Config, path string) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
