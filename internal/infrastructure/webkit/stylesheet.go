package webkit

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/puregotk-webkit/webkit"
	"github.com/driftnote/scrollkit/internal/application/port"
	"github.com/driftnote/scrollkit/internal/logging"
)

// StylesheetSink applies CSS variable blocks to a web view as a user
// stylesheet. Each apply replaces the previous sheet, so the page only ever
// carries one scrollkit stylesheet. Other user stylesheets on the content
// manager are left alone.
type StylesheetSink struct {
	mu    sync.Mutex
	ucm   *webkit.UserContentManager
	sheet *webkit.UserStyleSheet
}

var _ port.StyleSink = (*StylesheetSink)(nil)

// NewStylesheetSink creates a sink for the given content manager.
func NewStylesheetSink(ucm *webkit.UserContentManager) *StylesheetSink {
	return &StylesheetSink{ucm: ucm}
}

// ApplyVariables installs css as a user-level stylesheet in the top frame,
// removing the previously installed one first.
func (s *StylesheetSink) ApplyVariables(ctx context.Context, css string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logging.FromContext(ctx).With().Str("component", "stylesheet-sink").Logger()

	if s.ucm == nil {
		return errors.New("cannot apply styles: user content manager is nil")
	}

	if s.sheet != nil {
		s.ucm.RemoveStyleSheet(s.sheet)
		s.sheet = nil
	}
	if css == "" {
		return nil
	}

	sheet := webkit.NewUserStyleSheet(
		css,
		webkit.UserContentInjectTopFrameValue,
		webkit.UserStyleLevelUserValue,
		nil,
		nil,
	)
	if sheet == nil {
		return errors.New("failed to create user stylesheet")
	}
	s.ucm.AddStyleSheet(sheet)
	s.sheet = sheet

	log.Debug().Int("css_bytes", len(css)).Msg("Stylesheet applied to web view")
	return nil
}

// Clear removes the installed stylesheet, if any.
func (s *StylesheetSink) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ucm == nil || s.sheet == nil {
		return nil
	}
	s.ucm.RemoveStyleSheet(s.sheet)
	s.sheet = nil

	logging.FromContext(ctx).Debug().Str("component", "stylesheet-sink").Msg("Stylesheet removed from web view")
	return nil
}
