// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "launch toplevel"},
			want: "failed to launch toplevel",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "launch toplevel", Resource: "/usr/bin/coqtop"},
			want: "failed to launch toplevel: /usr/bin/coqtop",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "launch toplevel",
				Resource:  "/usr/bin/coqtop",
				Cause:     errors.New("permission denied"),
			},
			want: "failed to launch toplevel: /usr/bin/coqtop: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapWithOperation(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := WrapWithOperation(cause, "resolve file")
	if !errors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}

	if WrapWithOperation(nil, "anything") != nil {
		t.Error("WrapWithOperation(nil, ...) should return nil")
	}
}

func TestFormatIncludesSuggestions(t *testing.T) {
	t.Parallel()

	err := WrapWithContext(errors.New("not found"), "locate toplevel", "coqtop")
	err.WithSuggestion("check that COQBIN points at your installation")

	got := err.Format()
	if !strings.Contains(got, "• check that COQBIN") {
		t.Errorf("Format() missing suggestion bullet, got:\n%s", got)
	}
}

func TestUsageSentinel(t *testing.T) {
	t.Parallel()

	err := Usage("too few arguments")
	if !errors.Is(err, ErrUsage) {
		t.Error("Usage errors should satisfy errors.Is(err, ErrUsage)")
	}
	if got := err.Error(); got != "too few arguments" {
		t.Errorf("Error() = %q, want %q", got, "too few arguments")
	}
}
