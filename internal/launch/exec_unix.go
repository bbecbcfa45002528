// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package launch

import (
	"coqc-cli/internal/issue"

	"golang.org/x/sys/unix"
)

// Run replaces the driver's process image with the plan's executable.
// On success it does not return; the toplevel inherits the process
// identity, environment, and standard streams. It returns only when the
// exec system call itself fails.
func Run(plan Plan) error {
	err := unix.Exec(plan.Path, plan.Args, plan.Env)
	return issue.WrapWithContext(err, "launch toplevel", plan.Path)
}
