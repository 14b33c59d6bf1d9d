package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/driftnote/scrollkit/internal/application/usecase"
	"github.com/driftnote/scrollkit/internal/cli/styles"
	"github.com/driftnote/scrollkit/internal/infrastructure/sched"
)

var (
	simulateShowDelay int
	simulateHideDelay int
	simulateEvents    string
	simulateHorizon   int
	simulateJSON      bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Replay a scroll timeline against the delay settings",
	Long: `Replay a list of scroll events against the scrollbar controller on a
stepped clock and print every show/hide transition.

Events are millisecond offsets from the start of the timeline. Delays
default to the values in the settings file; override them to compare
configurations without saving anything.

Examples:
  scrollkit simulate
  scrollkit simulate --events 0,700
  scrollkit simulate --events 0,700 --hide-delay 500 --show-delay 200
  scrollkit simulate --events 0,80,160,240 --json`,
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().IntVar(&simulateShowDelay, "show-delay", -1, "show delay in ms (default: settings file value)")
	simulateCmd.Flags().IntVar(&simulateHideDelay, "hide-delay", -1, "hide delay in ms (default: settings file value)")
	simulateCmd.Flags().StringVar(&simulateEvents, "events", "0", "comma-separated scroll event offsets in ms")
	simulateCmd.Flags().IntVar(&simulateHorizon, "horizon", 0, "clock horizon in ms (0 runs until the last burst settles)")
	simulateCmd.Flags().BoolVar(&simulateJSON, "json", false, "print transitions as JSON")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	settings := app.Config.Scrollbars
	if simulateShowDelay >= 0 {
		settings.ShowDelayMs = simulateShowDelay
	}
	if simulateHideDelay >= 0 {
		settings.HideDelayMs = simulateHideDelay
	}

	events, err := parseEventOffsets(simulateEvents)
	if err != nil {
		return err
	}

	uc := usecase.NewSimulateTimelineUseCase()
	transitions, err := uc.Execute(app.Ctx(), usecase.SimulateTimelineInput{
		Settings:  settings,
		Events:    events,
		Horizon:   time.Duration(simulateHorizon) * time.Millisecond,
		Scheduler: sched.NewManual(time.Now()),
	})
	if err != nil {
		return err
	}

	renderer := styles.NewTimelineRenderer(app.Theme)

	if simulateJSON {
		out, err := renderer.RenderJSON(transitions)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	fmt.Println(renderer.Render(settings, events, transitions))
	return nil
}

// parseEventOffsets turns "0,700,1500" into durations.
func parseEventOffsets(raw string) ([]time.Duration, error) {
	var out []time.Duration
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ms, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("parse event offset %q: %w", part, err)
		}
		if ms < 0 {
			return nil, fmt.Errorf("event offset %q is negative", part)
		}
		out = append(out, time.Duration(ms)*time.Millisecond)
	}
	return out, nil
}
