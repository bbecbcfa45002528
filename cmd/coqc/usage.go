// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"coqc-cli/internal/install"
)

// usageText is the text printed on stderr for help flags and usage
// errors. Pass-through options are not enumerated; they belong to the
// toplevel and are forwarded verbatim.
func usageText() string {
	var b strings.Builder

	b.WriteString("Usage: coqc [options] file...\n\n")
	b.WriteString("Files are compiled by the coqtop toplevel; a missing .v suffix is\n")
	b.WriteString("inferred. Unrecognized options are forwarded to the toplevel.\n\n")
	b.WriteString("Driver options:\n")
	b.WriteString("  -verbose          compile files verbosely\n")
	b.WriteString("  -image bin        use bin as the toplevel (deprecated)\n")
	b.WriteString("  -byte             run the bytecode toplevel (deprecated)\n")
	b.WriteString("  -opt              run the native toplevel (deprecated)\n")
	b.WriteString("  -where            print the standard library directory and exit\n")
	b.WriteString("  -config           print the configuration report and exit\n")
	b.WriteString("  -v, --version     print the version and exit\n")
	b.WriteString("  -print-version    print the machine-readable version and exit\n")
	b.WriteString("  -h, --help        print this usage and exit\n")

	return b.String()
}

// versionLine is the human-readable -v/--version output.
func versionLine() string {
	return fmt.Sprintf("coqc version %s", getVersionString())
}

// machineVersionLine is the -print-version output: driver version and
// runtime version, space-separated, nothing else.
func machineVersionLine() string {
	return fmt.Sprintf("%s %s", Version, runtime.Version())
}

// configReport renders the -config output: one KEY=value line per
// installation fact, on stdout.
func configReport(lay install.Layout) string {
	configFile := lay.ConfigFile
	if configFile == "" {
		configFile = "(none)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "COQLIB=%s\n", lay.Coqlib)
	fmt.Fprintf(&b, "COQBIN=%s\n", lay.Coqbin)
	fmt.Fprintf(&b, "CONFIGFILE=%s\n", configFile)
	fmt.Fprintf(&b, "VERSION=%s\n", Version)
	return b.String()
}
