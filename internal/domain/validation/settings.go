package validation

import (
	"fmt"
	"strings"

	"github.com/driftnote/scrollkit/internal/domain/entity"
)

// ValidateScrollbarSettings checks a scrollbar settings snapshot, returning
// one message per violation. The prefix names the config section in messages.
func ValidateScrollbarSettings(prefix string, s entity.ScrollbarSettings) []string {
	var errs []string

	if s.ShowDelayMs < 0 {
		errs = append(errs, prefix+".show_delay_ms must be non-negative")
	}
	if s.HideDelayMs <= 0 {
		errs = append(errs, prefix+".hide_delay_ms must be positive")
	}
	if s.ThumbColor != "" && !IsHexColor(s.ThumbColor) {
		errs = append(errs, prefix+".thumb_color must be a hex color like #abc or #aabbcc")
	}
	if s.ThumbWidth < 0 {
		errs = append(errs, prefix+".thumb_width must be non-negative (0 = theme default)")
	}

	return errs
}

// ValidateTabSettings checks the tab header settings.
func ValidateTabSettings(prefix string, t entity.TabSettings) []string {
	if t.HeaderWidth < 0 {
		return []string{prefix + ".header_width must be non-negative (0 = host default)"}
	}
	return nil
}

// ValidateConfig validates the complete settings record. Invalid records are
// rejected before they ever reach the controller; callers keep the prior
// record in place on error.
func ValidateConfig(cfg entity.Config) error {
	var errs []string

	errs = append(errs, ValidateScrollbarSettings("scrollbars", cfg.Scrollbars)...)
	errs = append(errs, ValidateTabSettings("tabs", cfg.Tabs)...)

	if len(errs) > 0 {
		return fmt.Errorf("settings validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
