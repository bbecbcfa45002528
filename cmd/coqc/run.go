// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"coqc-cli/internal/config"
	"coqc-cli/internal/driver"
	"coqc-cli/internal/install"
	"coqc-cli/internal/issue"
	"coqc-cli/internal/launch"
	"coqc-cli/internal/resolve"

	"github.com/spf13/cobra"
)

// exitFn is swapped out by tests. The driver exits directly once it has
// printed its own diagnostics; ExitError is reserved for errors that fang
// should render.
var exitFn = os.Exit

// runDriver is the whole driver: classify, check, plan, launch.
func runDriver(_ *cobra.Command, args []string) error {
	inv, err := driver.Classify(args, driver.ResolverFunc(resolve.File))
	if err != nil {
		return classificationFailed(err)
	}

	switch inv.Action {
	case driver.ActionUsage:
		fmt.Fprint(os.Stderr, usageText())
		exitFn(1)
		return nil
	case driver.ActionVersion:
		fmt.Println(versionLine())
		return nil
	case driver.ActionPrintVersion:
		fmt.Println(machineVersionLine())
		return nil
	case driver.ActionWhere:
		_, lay := loadDriverConfig()
		fmt.Println(lay.Coqlib)
		return nil
	case driver.ActionConfig:
		_, lay := loadDriverConfig()
		fmt.Print(configReport(lay))
		return nil
	}

	for _, flag := range inv.Deprecated {
		logger.Warn("deprecated option", "flag", flag)
	}

	if len(inv.Files) == 0 && !inv.FilesWaived {
		fmt.Fprintf(os.Stderr, "%s: too few arguments\n", config.AppName)
		fmt.Fprint(os.Stderr, usageText())
		exitFn(1)
		return nil
	}

	cfg, lay := loadDriverConfig()
	toplevel, err := selectToplevel(inv, cfg, lay)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	plan := launch.BuildPlan(toplevel, inv.Passthrough, inv.Files, inv.Verbose)
	if inv.Verbose {
		logger.Info("exec", "argv", strings.Join(plan.Args, " "))
	}

	// Run replaces the process on Unix and exits with the child's code
	// on Windows; it returns only when process creation failed.
	if err := launch.Run(plan); err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}

// classificationFailed prints the diagnostic for a classification error
// and terminates: targeted message for a missing file, usage text for a
// malformed invocation.
func classificationFailed(err error) error {
	var nf *resolve.NotFoundError
	switch {
	case errors.As(err, &nf):
		fmt.Fprintf(os.Stderr, "%s: %s\n", config.AppName, nf.Error())
		exitFn(1)
	case errors.Is(err, issue.ErrUsage):
		fmt.Fprintf(os.Stderr, "%s: %s\n", config.AppName, err)
		fmt.Fprint(os.Stderr, usageText())
		exitFn(1)
	default:
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}

// selectToplevel picks the binary to launch: the -image override, then
// the configured default image, then installation lookup honoring the
// bytecode/native preference.
func selectToplevel(inv *driver.Invocation, cfg *config.Config, lay install.Layout) (string, error) {
	if inv.Image != "" {
		return inv.Image, nil
	}
	if cfg != nil && cfg.Image != "" {
		return cfg.Image, nil
	}

	useByte := inv.UseBytecode
	if useByte == nil && cfg != nil && cfg.BytecodeSet {
		b := cfg.Bytecode
		useByte = &b
	}
	return install.Toplevel(useByte, lay)
}

// loadDriverConfig loads the optional config file, warning (and
// continuing with defaults) when it is malformed.
func loadDriverConfig() (*config.Config, install.Layout) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
	}
	return cfg, install.DetectLayout(cfg)
}
