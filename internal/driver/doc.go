// SPDX-License-Identifier: MPL-2.0

// Package driver classifies a coqc-style invocation into compile units,
// pass-through tokens, and driver-level options. Classification is a
// single, non-backtracking left-to-right pass over the raw arguments; the
// result is an immutable Invocation that the command layer turns into a
// toplevel launch.
package driver
