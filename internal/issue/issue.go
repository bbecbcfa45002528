// SPDX-License-Identifier: MPL-2.0

// Package issue provides the error types shared across the driver:
// actionable errors with operation/resource context for user-facing
// messages, and the usage-error sentinel that aborts argument parsing.
package issue

import (
	"errors"
	"strings"
)

// ErrUsage is the sentinel wrapped by every malformed-invocation error.
// Callers detect it with errors.Is and respond by printing usage text.
var ErrUsage = errors.New("usage error")

// ActionableError is an error with context for user-facing error messages.
// It carries what operation failed, what resource was involved, and
// suggestions for how to fix the issue.
type ActionableError struct {
	// Operation describes what was being attempted (e.g., "launch toplevel").
	Operation string

	// Resource identifies the file, path, or entity involved (optional).
	Resource string

	// Suggestions provides hints on how to fix the issue (optional).
	Suggestions []string

	// Cause is the underlying error that triggered this error (optional).
	Cause error
}

// WrapWithOperation wraps an error with operation context.
func WrapWithOperation(err error, operation string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{
		Operation: operation,
		Cause:     err,
	}
}

// WrapWithContext wraps an error with operation and resource context.
func WrapWithContext(err error, operation, resource string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{
		Operation: operation,
		Resource:  resource,
		Cause:     err,
	}
}

// Error implements the error interface.
// Returns a concise message suitable for default (non-verbose) output.
func (e *ActionableError) Error() string {
	var msg strings.Builder

	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)

	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}

	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}

	return msg.String()
}

// Unwrap returns the underlying cause error for use with errors.Is/As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format returns the error message, appending suggestions as bullet lines.
func (e *ActionableError) Format() string {
	var msg strings.Builder

	msg.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n")
		for _, suggestion := range e.Suggestions {
			msg.WriteString("\n  • ")
			msg.WriteString(suggestion)
		}
	}

	return msg.String()
}

// WithSuggestion appends a suggestion and returns the error for chaining.
func (e *ActionableError) WithSuggestion(sug string) *ActionableError {
	e.Suggestions = append(e.Suggestions, sug)
	return e
}

// Usage creates a usage error with the given message.
// The result satisfies errors.Is(err, ErrUsage).
func Usage(msg string) error {
	return &usageError{msg: msg}
}

type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func (e *usageError) Unwrap() error { return ErrUsage }
