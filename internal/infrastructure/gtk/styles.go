package gtk

import (
	"context"
	"fmt"
	"sync"

	"github.com/driftnote/scrollkit/internal/application/port"
	"github.com/driftnote/scrollkit/internal/logging"
	"github.com/jwijenbergh/puregotk/v4/gdk"
	"github.com/jwijenbergh/puregotk/v4/gtk"
)

// DisplaySink applies CSS variable blocks to a gdk.Display through a single
// CssProvider. Reloading the provider replaces the previous block, so the
// display never accumulates stale variables.
type DisplaySink struct {
	mu       sync.Mutex
	display  *gdk.Display
	provider *gtk.CssProvider
	attached bool
}

var _ port.StyleSink = (*DisplaySink)(nil)

// NewDisplaySink creates a sink for the given display.
func NewDisplaySink(display *gdk.Display) *DisplaySink {
	return &DisplaySink{display: display}
}

// ApplyVariables loads css into the provider, attaching it to the display
// on first use.
func (s *DisplaySink) ApplyVariables(ctx context.Context, css string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logging.FromContext(ctx).With().Str("component", "display-sink").Logger()

	if s.display == nil {
		return fmt.Errorf("cannot apply styles: display is nil")
	}

	if s.provider == nil {
		s.provider = gtk.NewCssProvider()
	}
	if s.provider == nil {
		return fmt.Errorf("failed to create CSS provider")
	}

	s.provider.LoadFromString(css)
	if !s.attached {
		gtk.StyleContextAddProviderForDisplay(
			s.display,
			s.provider,
			uint(gtk.STYLE_PROVIDER_PRIORITY_APPLICATION),
		)
		s.attached = true
	}

	log.Debug().Int("css_bytes", len(css)).Msg("Style variables applied to display")
	return nil
}

// Clear empties the provider. The provider stays attached; an empty string
// contributes no styles.
func (s *DisplaySink) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.provider == nil {
		return nil
	}
	s.provider.LoadFromString("")

	logging.FromContext(ctx).Debug().Str("component", "display-sink").Msg("Style variables cleared")
	return nil
}
