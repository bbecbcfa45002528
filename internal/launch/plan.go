// SPDX-License-Identifier: MPL-2.0

// Package launch assembles the toplevel's argument vector and hands the
// process over to it: by image replacement on Unix, by spawn-and-wait on
// Windows. Either way the toplevel observes the driver's environment and
// standard streams unchanged.
package launch

import "os"

// Compile directives appended once per compile unit.
const (
	// noWarningsFlag keeps the toplevel from interleaving load-path
	// warnings with batch compilation output.
	noWarningsFlag = "-quiet"

	compileFlag        = "-compile"
	compileVerboseFlag = "-compile-verbose"
)

// Plan is everything needed to launch the toplevel. Args includes the
// executable path as the first element; Env is a verbatim copy of the
// driver's environment at plan time.
type Plan struct {
	Path string
	Args []string
	Env  []string
}

// BuildPlan builds the final argument vector: the toplevel path, the
// pass-through tokens in their original order, then one directive triple
// per compile unit in discovery order.
func BuildPlan(toplevel string, passthrough, files []string, verbose bool) Plan {
	directive := compileFlag
	if verbose {
		directive = compileVerboseFlag
	}

	args := make([]string, 0, 1+len(passthrough)+3*len(files))
	args = append(args, toplevel)
	args = append(args, passthrough...)
	for _, file := range files {
		args = append(args, noWarningsFlag, directive, file)
	}

	return Plan{
		Path: toplevel,
		Args: args,
		Env:  os.Environ(),
	}
}
