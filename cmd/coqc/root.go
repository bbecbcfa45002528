// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// logger emits driver diagnostics on stderr, never on the
	// toplevel's streams.
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "coqc"})

	// rootCmd is the single driver command. The coqc grammar is
	// single-dash, case-sensitive, and position-dependent, so cobra's
	// flag parsing is disabled and the raw arguments are classified by
	// internal/driver.
	rootCmd = &cobra.Command{
		Use:   "coqc [options] file...",
		Short: "Batch compiler front end for the Coq toplevel",
		Long: TitleStyle.Render("coqc") + SubtitleStyle.Render(" - batch compiler front end") + `

coqc separates compile files from pass-through options and runs the
coqtop toplevel over them in batch mode. All compilation is performed
by the toplevel; coqc only classifies arguments, resolves files, and
hands the process over.`,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE:               runDriver,
	}
)

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the driver command. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}
