package entity

import "time"

// Default scrollbar timing values. A zero show delay means the indicator
// appears synchronously with the first scroll event.
const (
	DefaultShowDelayMs = 0
	DefaultHideDelayMs = 750
)

// ScrollbarSettings is the immutable settings snapshot consumed by the
// scroll-activity controller. Snapshots are replaced wholesale on update;
// nothing mutates an individual field of a live snapshot.
type ScrollbarSettings struct {
	// ShowDelayMs is how long after a scroll event the indicator appears.
	ShowDelayMs int `mapstructure:"show_delay_ms" toml:"show_delay_ms" json:"show_delay_ms" jsonschema:"minimum=0,description=Delay in milliseconds before the scrollbar appears after scrolling starts"`

	// HideDelayMs is how long after the last scroll event the indicator
	// disappears, measured from the last qualifying event.
	HideDelayMs int `mapstructure:"hide_delay_ms" toml:"hide_delay_ms" json:"hide_delay_ms" jsonschema:"minimum=1,description=Delay in milliseconds of inactivity before the scrollbar hides"`

	// ThumbColor is a hex color for the scrollbar thumb ("" = theme default).
	ThumbColor string `mapstructure:"thumb_color" toml:"thumb_color" json:"thumb_color,omitempty" jsonschema:"description=Hex color for the scrollbar thumb; empty uses the theme default"`

	// ThumbWidth is the thumb width in pixels (0 = theme default).
	ThumbWidth int `mapstructure:"thumb_width" toml:"thumb_width" json:"thumb_width,omitempty" jsonschema:"minimum=0,description=Scrollbar thumb width in pixels; zero uses the theme default"`
}

// TabSettings configures the workspace tab header plugin.
type TabSettings struct {
	// HeaderWidth is the fixed tab header width in pixels (0 = host default).
	HeaderWidth int `mapstructure:"header_width" toml:"header_width" json:"header_width,omitempty" jsonschema:"minimum=0,description=Fixed width in pixels for workspace tab headers; zero uses the host default"`
}

// Config is the complete persisted settings record for the plugin suite.
type Config struct {
	Scrollbars ScrollbarSettings `mapstructure:"scrollbars" toml:"scrollbars" json:"scrollbars"`
	Tabs       TabSettings       `mapstructure:"tabs" toml:"tabs" json:"tabs"`
}

// DefaultScrollbarSettings returns the settings used when nothing has been
// persisted yet: instant show, 750ms hide, theme-default color and width.
func DefaultScrollbarSettings() ScrollbarSettings {
	return ScrollbarSettings{
		ShowDelayMs: DefaultShowDelayMs,
		HideDelayMs: DefaultHideDelayMs,
	}
}

// DefaultConfig returns the full default settings record.
func DefaultConfig() Config {
	return Config{
		Scrollbars: DefaultScrollbarSettings(),
	}
}

// MergeOverDefaults fills gaps in a loaded record with defaults. Fields a
// record never set (zero hide delay, most commonly from an older or partial
// file) fall back rather than producing a degenerate timer configuration.
// Color and width keep their zero values; zero means "unset" for both.
func (c Config) MergeOverDefaults() Config {
	merged := c
	if merged.Scrollbars.HideDelayMs <= 0 {
		merged.Scrollbars.HideDelayMs = DefaultHideDelayMs
	}
	if merged.Scrollbars.ShowDelayMs < 0 {
		merged.Scrollbars.ShowDelayMs = DefaultShowDelayMs
	}
	if merged.Scrollbars.ThumbWidth < 0 {
		merged.Scrollbars.ThumbWidth = 0
	}
	if merged.Tabs.HeaderWidth < 0 {
		merged.Tabs.HeaderWidth = 0
	}
	return merged
}

// ShowDelay returns the show delay as a duration.
func (s ScrollbarSettings) ShowDelay() time.Duration {
	return time.Duration(s.ShowDelayMs) * time.Millisecond
}

// HideDelay returns the hide delay as a duration.
func (s ScrollbarSettings) HideDelay() time.Duration {
	return time.Duration(s.HideDelayMs) * time.Millisecond
}

// HasThumbColor reports whether a custom thumb color is set.
func (s ScrollbarSettings) HasThumbColor() bool {
	return s.ThumbColor != ""
}

// HasThumbWidth reports whether a custom thumb width is set.
func (s ScrollbarSettings) HasThumbWidth() bool {
	return s.ThumbWidth > 0
}

// HasHeaderWidth reports whether a fixed tab header width is set.
func (t TabSettings) HasHeaderWidth() bool {
	return t.HeaderWidth > 0
}
