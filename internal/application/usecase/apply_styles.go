package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/driftnote/scrollkit/internal/application/port"
	"github.com/driftnote/scrollkit/internal/domain/entity"
	"github.com/driftnote/scrollkit/internal/logging"
)

// CSS custom properties consumed by the stylesheet rules that render the
// scrollbar thumb and the workspace tab headers.
const (
	ThumbColorVar = "--scrollkit-thumb-color"
	ThumbWidthVar = "--scrollkit-thumb-width"
	TabWidthVar   = "--scrollkit-tab-width"
)

// GenerateScrollbarCSSVars renders the :root declarations for the scrollbar
// settings. Unset fields are omitted; with nothing set it returns "".
func GenerateScrollbarCSSVars(s entity.ScrollbarSettings) string {
	var sb strings.Builder
	if s.HasThumbColor() {
		sb.WriteString("  " + ThumbColorVar + ": " + s.ThumbColor + ";\n")
	}
	if s.HasThumbWidth() {
		sb.WriteString("  " + ThumbWidthVar + ": " + strconv.Itoa(s.ThumbWidth) + "px;\n")
	}
	if sb.Len() == 0 {
		return ""
	}
	return ":root {\n" + sb.String() + "}\n"
}

// GenerateTabCSSVars renders the :root declaration for the tab header width,
// or "" when the host default is in effect.
func GenerateTabCSSVars(s entity.TabSettings) string {
	if !s.HasHeaderWidth() {
		return ""
	}
	return ":root {\n  " + TabWidthVar + ": " + strconv.Itoa(s.HeaderWidth) + "px;\n}\n"
}

// ApplyStylesUseCase pushes a generated variable block to every style sink.
// Each plugin owns one instance, so a plugin's Clear never touches another
// plugin's variables.
type ApplyStylesUseCase struct {
	sinks []port.StyleSink
}

// NewApplyStylesUseCase creates the style fan-out over the given sinks.
func NewApplyStylesUseCase(sinks ...port.StyleSink) *ApplyStylesUseCase {
	return &ApplyStylesUseCase{sinks: sinks}
}

// ApplyStylesInput carries the CSS block to apply. An empty block clears
// instead, so a record with every styling field unset leaves no trace.
type ApplyStylesInput struct {
	CSS string
}

// Execute applies the block to every sink, replacing whatever block this
// use case applied before. Sinks that fail do not stop the others; the
// errors come back joined.
func (uc *ApplyStylesUseCase) Execute(ctx context.Context, input ApplyStylesInput) error {
	log := logging.FromContext(ctx).With().Str("component", "styles").Logger()

	if input.CSS == "" {
		return uc.Clear(ctx)
	}

	var errs []error
	for _, sink := range uc.sinks {
		if err := sink.ApplyVariables(ctx, input.CSS); err != nil {
			log.Error().Err(err).Msg("style sink rejected variables")
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	log.Debug().Int("sinks", len(uc.sinks)).Msg("style variables applied")
	return nil
}

// Clear removes the applied block from every sink. Clearing twice is a
// no-op, matching the teardown contract.
func (uc *ApplyStylesUseCase) Clear(ctx context.Context) error {
	log := logging.FromContext(ctx).With().Str("component", "styles").Logger()

	var errs []error
	for _, sink := range uc.sinks {
		if err := sink.Clear(ctx); err != nil {
			log.Error().Err(err).Msg("style sink failed to clear")
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	log.Debug().Int("sinks", len(uc.sinks)).Msg("style variables cleared")
	return nil
}
