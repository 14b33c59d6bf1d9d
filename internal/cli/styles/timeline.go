package styles

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/driftnote/scrollkit/internal/application/usecase"
	"github.com/driftnote/scrollkit/internal/domain/entity"
)

// TimelineRenderer renders simulated scroll timelines.
type TimelineRenderer struct {
	theme *Theme
}

// NewTimelineRenderer creates a new timeline renderer with the given theme.
func NewTimelineRenderer(theme *Theme) *TimelineRenderer {
	return &TimelineRenderer{theme: theme}
}

// Render renders the replayed timeline as a transition table.
func (r *TimelineRenderer) Render(
	settings entity.ScrollbarSettings,
	events []time.Duration,
	transitions []usecase.Transition,
) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	header := fmt.Sprintf("%s %s",
		iconStyle.Render(IconClock),
		r.theme.Title.Render("Scroll Timeline"),
	)

	delays := fmt.Sprintf("show delay %dms, hide delay %dms",
		settings.ShowDelayMs, settings.HideDelayMs)

	marks := make([]string, len(events))
	for i, ev := range events {
		marks[i] = formatOffset(ev)
	}
	eventLine := "scroll events: " + strings.Join(marks, ", ")
	if len(marks) == 0 {
		eventLine = "scroll events: none"
	}

	body := header + "\n\n" +
		r.theme.Subtle.Render(delays) + "\n" +
		r.theme.Subtle.Render(eventLine) + "\n\n" +
		r.renderTransitions(transitions)

	return r.theme.Box.Render(body)
}

func (r *TimelineRenderer) renderTransitions(transitions []usecase.Transition) string {
	if len(transitions) == 0 {
		return r.theme.Subtle.Render("no transitions within the horizon")
	}

	width := 0
	for _, tr := range transitions {
		if n := len(formatOffset(tr.At)); n > width {
			width = n
		}
	}

	var lines []string
	for _, tr := range transitions {
		offset := r.theme.Normal.Render(fmt.Sprintf("%*s", width, formatOffset(tr.At)))
		region := r.theme.Subtle.Render(tr.Region)

		state := r.theme.BadgeMuted.Render(IconStop + " idle")
		if tr.Active {
			state = r.theme.Badge.Render(IconPlay + " active")
		}

		lines = append(lines, fmt.Sprintf("%s  %s  %s", offset, state, region))
	}
	return strings.Join(lines, "\n")
}

// RenderJSON renders the transitions as JSON with millisecond offsets.
func (*TimelineRenderer) RenderJSON(transitions []usecase.Transition) (string, error) {
	type row struct {
		AtMs   int64  `json:"at_ms"`
		Region string `json:"region"`
		Active bool   `json:"active"`
	}

	rows := make([]row, len(transitions))
	for i, tr := range transitions {
		rows[i] = row{AtMs: tr.At.Milliseconds(), Region: tr.Region, Active: tr.Active}
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal timeline: %w", err)
	}
	return string(data), nil
}

func formatOffset(d time.Duration) string {
	return fmt.Sprintf("+%dms", d.Milliseconds())
}
