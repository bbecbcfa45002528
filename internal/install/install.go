// SPDX-License-Identifier: MPL-2.0

// Package install resolves the installation layout the driver launches
// into: where the standard library lives, where the toplevel binaries
// live, and which toplevel binary to run.
package install

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"coqc-cli/internal/config"
	"coqc-cli/internal/issue"
	"coqc-cli/pkg/platform"
)

// ToplevelName is the base name of the toplevel binary.
const ToplevelName = "coqtop"

// Layout is the resolved installation layout. Values follow the
// precedence environment > config file > computed default; command-line
// flags are applied by the caller before the layout is consulted.
type Layout struct {
	// Coqlib is the standard library directory.
	Coqlib string

	// Coqbin is the directory searched first for toplevel binaries.
	Coqbin string

	// ConfigFile is the config file the defaults came from, if any.
	ConfigFile string
}

// executablePath is swapped out by tests.
var executablePath = os.Executable

// DetectLayout computes the installation layout from the loaded
// configuration (which already carries the COQLIB/COQBIN environment
// overrides) and the running executable's location.
func DetectLayout(cfg *config.Config) Layout {
	lay := Layout{}
	if cfg != nil {
		lay.Coqlib = cfg.Coqlib
		lay.Coqbin = cfg.Coqbin
		lay.ConfigFile = cfg.FileUsed
	}

	if lay.Coqbin == "" {
		if exe, err := executablePath(); err == nil {
			lay.Coqbin = filepath.Dir(exe)
		} else {
			lay.Coqbin = "."
		}
	}
	if lay.Coqlib == "" {
		lay.Coqlib = filepath.Clean(filepath.Join(lay.Coqbin, "..", "lib", "coq"))
	}

	return lay
}

// Toplevel resolves the toplevel binary to launch. useBytecode selects
// between the bytecode and native builds; nil means native. Candidates
// are looked up inside the layout's bin directory first, then on PATH.
func Toplevel(useBytecode *bool, lay Layout) (string, error) {
	variant := ToplevelName + ".opt"
	if useBytecode != nil && *useBytecode {
		variant = ToplevelName + ".byte"
	}
	candidates := []string{variant, ToplevelName}

	for _, name := range candidates {
		path := filepath.Join(lay.Coqbin, exeName(name))
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	err := issue.WrapWithContext(os.ErrNotExist, "locate toplevel", variant)
	err.WithSuggestion("set COQBIN to the directory containing " + ToplevelName)
	err.WithSuggestion("or pass an explicit binary with -image")
	return "", err
}

// exeName appends the Windows executable suffix where required.
func exeName(name string) string {
	if runtime.GOOS == platform.Windows {
		return name + ".exe"
	}
	return name
}
