package validation

import (
	"strings"
	"testing"

	"github.com/driftnote/scrollkit/internal/domain/entity"
)

func TestIsHexColor(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"#abc", true},
		{"#ABC", true},
		{"#aabbcc", true},
		{"#A1B2C3", true},
		{"", false},
		{"abc", false},
		{"#ab", false},
		{"#abcd", false},
		{"#abcde", false},
		{"#aabbccdd", false},
		{"#ggg", false},
		{"#12345g", false},
		{" #abc", false},
		{"#abc ", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := IsHexColor(tt.value); got != tt.want {
				t.Errorf("IsHexColor(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateScrollbarSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings entity.ScrollbarSettings
		wantErrs int
	}{
		{"defaults are valid", entity.DefaultScrollbarSettings(), 0},
		{"full custom settings valid", entity.ScrollbarSettings{ShowDelayMs: 200, HideDelayMs: 500, ThumbColor: "#aabbcc", ThumbWidth: 10}, 0},
		{"negative show delay", entity.ScrollbarSettings{ShowDelayMs: -1, HideDelayMs: 750}, 1},
		{"zero hide delay", entity.ScrollbarSettings{HideDelayMs: 0}, 1},
		{"negative hide delay", entity.ScrollbarSettings{HideDelayMs: -750}, 1},
		{"bad color", entity.ScrollbarSettings{HideDelayMs: 750, ThumbColor: "red"}, 1},
		{"negative width", entity.ScrollbarSettings{HideDelayMs: 750, ThumbWidth: -2}, 1},
		{"everything wrong", entity.ScrollbarSettings{ShowDelayMs: -1, HideDelayMs: 0, ThumbColor: "#zzz", ThumbWidth: -1}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateScrollbarSettings("scrollbars", tt.settings)
			if len(errs) != tt.wantErrs {
				t.Errorf("got %d errors %v, want %d", len(errs), errs, tt.wantErrs)
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(entity.DefaultConfig()); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}

	bad := entity.Config{
		Scrollbars: entity.ScrollbarSettings{ShowDelayMs: -5, HideDelayMs: 0, ThumbColor: "blue"},
		Tabs:       entity.TabSettings{HeaderWidth: -10},
	}
	err := ValidateConfig(bad)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "settings validation failed") {
		t.Errorf("error should name the failure, got %q", err.Error())
	}
	for _, field := range []string{"show_delay_ms", "hide_delay_ms", "thumb_color", "header_width"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error should mention %s, got %q", field, err.Error())
		}
	}
}
