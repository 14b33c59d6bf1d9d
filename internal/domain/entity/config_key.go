package entity

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownSettingKey reports a dotted key that no setting maps to.
var ErrUnknownSettingKey = errors.New("unknown setting key")

// Dotted key paths for every editable setting, matching the TOML layout.
const (
	KeyShowDelay  = "scrollbars.show_delay_ms"
	KeyHideDelay  = "scrollbars.hide_delay_ms"
	KeyThumbColor = "scrollbars.thumb_color"
	KeyThumbWidth = "scrollbars.thumb_width"
	KeyTabWidth   = "tabs.header_width"
)

// SettingKeyInfo describes a single editable settings key for help output
// and the settings editor.
type SettingKeyInfo struct {
	Key         string
	Type        string
	Default     string
	Description string
}

// SettingKeys lists every editable key in display order.
func SettingKeys() []SettingKeyInfo {
	return []SettingKeyInfo{
		{Key: KeyShowDelay, Type: "int", Default: strconv.Itoa(DefaultShowDelayMs), Description: "Delay in milliseconds before the scrollbar appears after scrolling starts"},
		{Key: KeyHideDelay, Type: "int", Default: strconv.Itoa(DefaultHideDelayMs), Description: "Inactivity in milliseconds before the scrollbar hides"},
		{Key: KeyThumbColor, Type: "string", Default: "", Description: "Hex color for the scrollbar thumb (empty uses the theme default)"},
		{Key: KeyThumbWidth, Type: "int", Default: "0", Description: "Scrollbar thumb width in pixels (0 uses the theme default)"},
		{Key: KeyTabWidth, Type: "int", Default: "0", Description: "Fixed workspace tab header width in pixels (0 uses the host default)"},
	}
}

// WithKey returns a copy of the record with one dotted key replaced by the
// parsed value. Unknown keys return ErrUnknownSettingKey; parse failures
// leave the record untouched. Validation is the caller's job.
func (c Config) WithKey(key, value string) (Config, error) {
	out := c
	switch key {
	case KeyShowDelay:
		n, err := strconv.Atoi(value)
		if err != nil {
			return c, fmt.Errorf("parse %s: %w", key, err)
		}
		out.Scrollbars.ShowDelayMs = n
	case KeyHideDelay:
		n, err := strconv.Atoi(value)
		if err != nil {
			return c, fmt.Errorf("parse %s: %w", key, err)
		}
		out.Scrollbars.HideDelayMs = n
	case KeyThumbColor:
		out.Scrollbars.ThumbColor = value
	case KeyThumbWidth:
		n, err := strconv.Atoi(value)
		if err != nil {
			return c, fmt.Errorf("parse %s: %w", key, err)
		}
		out.Scrollbars.ThumbWidth = n
	case KeyTabWidth:
		n, err := strconv.Atoi(value)
		if err != nil {
			return c, fmt.Errorf("parse %s: %w", key, err)
		}
		out.Tabs.HeaderWidth = n
	default:
		return c, fmt.Errorf("%w: %q", ErrUnknownSettingKey, key)
	}
	return out, nil
}

// KeyValue returns the current value of a dotted key as a string.
func (c Config) KeyValue(key string) (string, error) {
	switch key {
	case KeyShowDelay:
		return strconv.Itoa(c.Scrollbars.ShowDelayMs), nil
	case KeyHideDelay:
		return strconv.Itoa(c.Scrollbars.HideDelayMs), nil
	case KeyThumbColor:
		return c.Scrollbars.ThumbColor, nil
	case KeyThumbWidth:
		return strconv.Itoa(c.Scrollbars.ThumbWidth), nil
	case KeyTabWidth:
		return strconv.Itoa(c.Tabs.HeaderWidth), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSettingKey, key)
	}
}
