package entity

import (
	"testing"
	"time"
)

func TestDefaultScrollbarSettings(t *testing.T) {
	s := DefaultScrollbarSettings()

	if s.ShowDelayMs != 0 {
		t.Errorf("ShowDelayMs = %d, want 0", s.ShowDelayMs)
	}
	if s.HideDelayMs != 750 {
		t.Errorf("HideDelayMs = %d, want 750", s.HideDelayMs)
	}
	if s.HasThumbColor() {
		t.Error("default settings should have no thumb color")
	}
	if s.HasThumbWidth() {
		t.Error("default settings should have no thumb width")
	}
}

func TestMergeOverDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "empty record falls back to defaults",
			in:   Config{},
			want: Config{Scrollbars: ScrollbarSettings{ShowDelayMs: 0, HideDelayMs: 750}},
		},
		{
			name: "explicit values survive",
			in: Config{
				Scrollbars: ScrollbarSettings{ShowDelayMs: 200, HideDelayMs: 500, ThumbColor: "#abc", ThumbWidth: 8},
				Tabs:       TabSettings{HeaderWidth: 120},
			},
			want: Config{
				Scrollbars: ScrollbarSettings{ShowDelayMs: 200, HideDelayMs: 500, ThumbColor: "#abc", ThumbWidth: 8},
				Tabs:       TabSettings{HeaderWidth: 120},
			},
		},
		{
			name: "negative delays reset to defaults",
			in:   Config{Scrollbars: ScrollbarSettings{ShowDelayMs: -10, HideDelayMs: -1}},
			want: Config{Scrollbars: ScrollbarSettings{ShowDelayMs: 0, HideDelayMs: 750}},
		},
		{
			name: "negative widths reset to unset",
			in: Config{
				Scrollbars: ScrollbarSettings{HideDelayMs: 750, ThumbWidth: -3},
				Tabs:       TabSettings{HeaderWidth: -1},
			},
			want: Config{Scrollbars: ScrollbarSettings{ShowDelayMs: 0, HideDelayMs: 750}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.MergeOverDefaults()
			if got != tt.want {
				t.Errorf("MergeOverDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScrollbarSettingsDurations(t *testing.T) {
	s := ScrollbarSettings{ShowDelayMs: 200, HideDelayMs: 500}

	if got := s.ShowDelay(); got != 200*time.Millisecond {
		t.Errorf("ShowDelay() = %v, want 200ms", got)
	}
	if got := s.HideDelay(); got != 500*time.Millisecond {
		t.Errorf("HideDelay() = %v, want 500ms", got)
	}
}
