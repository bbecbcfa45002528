// SPDX-License-Identifier: MPL-2.0

//go:build windows

package launch

import (
	"errors"
	"os"
	"os/exec"

	"coqc-cli/internal/issue"
)

// Run spawns the plan's executable with inherited environment and
// standard streams, waits for it, and exits the driver with the child's
// termination code. Windows has no process image replacement, so this is
// the closest equivalent of the Unix backend. It returns only when
// process creation itself fails.
func Run(plan Plan) error {
	cmd := exec.Command(plan.Path, plan.Args[1:]...)
	cmd.Env = plan.Env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			if code < 0 {
				code = 1
			}
			os.Exit(code)
		}
		return issue.WrapWithContext(err, "launch toplevel", plan.Path)
	}

	os.Exit(0)
	return nil
}
