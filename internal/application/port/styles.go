package port

import "context"

// StyleSink receives generated CSS and reflects it onto a styling surface.
// The GTK adapter loads it into a display-wide CssProvider; the WebKit
// adapter installs it as a user stylesheet on the content manager.
//
// ApplyVariables replaces any block previously applied through the same
// sink. Clear removes the block entirely; applying then clearing leaves the
// surface exactly as it was found.
type StyleSink interface {
	ApplyVariables(ctx context.Context, css string) error
	Clear(ctx context.Context) error
}
