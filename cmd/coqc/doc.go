// SPDX-License-Identifier: MPL-2.0

// Package cmd wires the coqc driver together: it classifies the raw
// invocation, resolves compile units, and launches the toplevel with the
// assembled argument vector.
package cmd
