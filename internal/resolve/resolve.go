// SPDX-License-Identifier: MPL-2.0

// Package resolve decides compile-unit membership for tokens that matched
// no flag rule: a token names an existing file verbatim, or with an
// inferred ".v" suffix, or the whole invocation aborts.
package resolve

import (
	"fmt"
	"os"
)

// SourceExt is the suffix inferred for tokens that don't name a file as-is.
const SourceExt = ".v"

// NotFoundError reports a token that resolves to no file, with or without
// the inferred suffix.
type NotFoundError struct {
	Token string
}

// Error renders the message printed on stderr before the driver aborts.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no such file or directory", e.Token)
}

// File resolves token to an existing path. The verbatim form wins over the
// suffixed form when both exist.
func File(token string) (string, error) {
	if _, err := os.Stat(token); err == nil {
		return token, nil
	}
	withExt := token + SourceExt
	if _, err := os.Stat(withExt); err == nil {
		return withExt, nil
	}
	return "", &NotFoundError{Token: token}
}
