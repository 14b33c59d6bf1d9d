// Package cmd provides Cobra CLI commands for scrollkit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/driftnote/scrollkit/internal/cli"
	"github.com/driftnote/scrollkit/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "scrollkit",
		Short: "UI plugin suite for Driftnote: auto-hiding scrollbars and fixed-width tabs",
		Long: `Scrollkit - scroll-activity plugins for the Driftnote notes app.

The suite ships two plugins for Driftnote's WebKitGTK shell:
  - scrollbars: overlay scrollbars that appear on scroll activity and
    hide again after a configurable idle delay
  - tabwidth: fixed-width workspace tab headers

Use 'scrollkit preview' to try the plugins in a live demo window, or
explore the subcommands to inspect and edit the shared settings file,
print its JSON schema, and replay scroll timelines against the delay
settings without opening a window.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// previewCmd is a placeholder for help - actual execution is in main.go
var previewCmd = &cobra.Command{
	Use:   "preview [uri]",
	Short: "Open a demo window with the plugins active",
	Long: `Open a GTK window with a WebKit view, activate the plugins against it,
and follow settings file edits live.

The demo page contains scrollable panels marked as scroll regions. If a
URI is provided it is loaded instead of the demo page; scroll activity is
then tracked on the document itself.

Examples:
  scrollkit preview                      # Built-in demo page
  scrollkit preview https://example.com  # Track scrolling on a real page`,
	Run: func(_ *cobra.Command, _ []string) {
		// This is handled by main.go before cobra runs
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
