package config

import (
	"os"
	"path/filepath"
)

const (
	appName    = "scrollkit"
	configName = "scrollkit"
	schemaName = "scrollkit.schema.json"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// ConfigDir returns the XDG config directory for scrollkit:
// $XDG_CONFIG_HOME/scrollkit, defaulting to ~/.config/scrollkit.
func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}
