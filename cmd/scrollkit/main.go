// Package main provides the entry point for the scrollkit CLI.
package main

import (
	"context"
	"os"
	"runtime"

	"github.com/driftnote/scrollkit/internal/cli/cmd"
	"github.com/driftnote/scrollkit/internal/domain/build"
	"github.com/driftnote/scrollkit/internal/logging"
	"github.com/driftnote/scrollkit/internal/preview"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// previewURI holds the page to open on startup (from preview command).
var previewURI string

func main() {
	enableCrashForensics()

	// Run GUI mode for preview command
	if len(os.Args) > 1 && os.Args[1] == "preview" && !wantsHelp(os.Args[2:]) {
		if len(os.Args) > 2 {
			previewURI = os.Args[2]
		}
		os.Args = os.Args[:1]
		os.Exit(runPreview())
		return
	}

	// Pass build info to CLI
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	// Default: run CLI (shows help if no subcommand)
	cmd.Execute()
}

// wantsHelp keeps `scrollkit preview --help` on the cobra path.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

func runPreview() int {
	runtime.LockOSThread()

	logger := logging.NewFromEnv()
	logger.Info().
		Str("version", version).
		Str("commit", commit).
		Str("build_date", buildDate).
		Msg("starting scrollkit preview")
	ctx := logging.WithContext(context.Background(), logger)
	logCoreDumpLimits(ctx)

	return preview.Run(ctx, os.Args, preview.Options{URI: previewURI})
}
