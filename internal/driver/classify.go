// SPDX-License-Identifier: MPL-2.0

package driver

import (
	"fmt"

	"coqc-cli/internal/issue"
)

type (
	// Action is what the driver should do after classification. Most
	// invocations compile; the informational actions short-circuit
	// parsing at the token that requested them.
	Action int

	// arity is the argument-consumption class of a pass-through flag.
	arity int

	// Invocation is the complete result of classifying one argument
	// list. It carries no reference to the raw arguments; everything
	// the launch path needs is copied in.
	Invocation struct {
		// Files are the resolved compile units in discovery order.
		// Duplicates are kept.
		Files []string

		// Passthrough are the tokens forwarded verbatim to the
		// toplevel, in their original left-to-right order.
		Passthrough []string

		// Verbose selects the -compile-verbose directive per file.
		Verbose bool

		// UseBytecode is the -byte/-opt preference; nil means the
		// installation default applies.
		UseBytecode *bool

		// Image overrides the toplevel binary; empty means resolve
		// it from the installation layout.
		Image string

		// FilesWaived records that a variadic batch subcommand was
		// seen, which makes compile units optional.
		FilesWaived bool

		// Deprecated lists the deprecated flags encountered, for
		// the command layer to warn about.
		Deprecated []string

		// Action tells the command layer what to do next.
		Action Action
	}

	// Resolver decides compile-unit membership for a token that matched
	// no flag rule. Implementations return the path to record (possibly
	// suffix-adjusted) or an error that aborts classification.
	Resolver interface {
		File(token string) (string, error)
	}

	// ResolverFunc adapts a function to the Resolver interface.
	ResolverFunc func(token string) (string, error)
)

// File calls f(token).
func (f ResolverFunc) File(token string) (string, error) { return f(token) }

const (
	// ActionCompile launches the toplevel over the classified files.
	ActionCompile Action = iota
	// ActionUsage prints usage text to stderr and exits 1.
	ActionUsage
	// ActionVersion prints the human-readable version and exits 0.
	ActionVersion
	// ActionPrintVersion prints the machine-readable version and exits 0.
	ActionPrintVersion
	// ActionWhere prints the library directory and exits 0.
	ActionWhere
	// ActionConfig prints the full configuration report and exits 0.
	ActionConfig
)

const (
	arityZero arity = iota
	arityOne
	arityTwo
	arityVariadic
)

// flagTable maps every pass-through flag to its argument arity. Flag names
// are matched exactly and case-sensitively. The semantics of these flags
// belong to the toplevel; the driver only knows how many tokens each one
// consumes.
var flagTable = map[string]arity{
	// zero-argument flags, forwarded as-is
	"-batch": arityZero,
	"-bt": arityZero,
	"-debug": arityZero,
	"-stm-debug": arityZero,
	"-emacs": arityZero,
	"-time": arityZero,
	"-noinit": arityZero,
	"-nois": arityZero,
	"-noglob": arityZero,
	"-no-glob": arityZero,
	"-q": arityZero,
	"-profile": arityZero,
	"-just-parsing": arityZero,
	"-echo": arityZero,
	"-quiet": arityZero,
	"-silent": arityZero,
	"-m": arityZero,
	"-xml": arityZero,
	"-beautify": arityZero,
	"-strict-implicit": arityZero,
	"-impredicative-set": arityZero,
	"-vm": arityZero,
	"-indices-matter": arityZero,
	"-quick": arityZero,
	"-type-in-type": arityZero,
	"-async-proofs-always-delegate": arityZero,
	"-async-proofs-never-reopen-branch": arityZero,
	"-test-mode": arityZero,

	// one-argument flags, flag and value forwarded together
	"-I": arityOne,
	"-include": arityOne,
	"-coqlib": arityOne,
	"-w": arityOne,
	"-o": arityOne,
	"-init-file": arityOne,
	"-inputstate": arityOne,
	"-is": arityOne,
	"-outputstate": arityOne,
	"-load-vernac-source": arityOne,
	"-l": arityOne,
	"-load-vernac-object": arityOne,
	"-load-ml-source": arityOne,
	"-load-ml-object": arityOne,
	"-require": arityOne,
	"-top": arityOne,
	"-exclude-dir": arityOne,
	"-dump-glob": arityOne,
	"-compat": arityOne,
	"-color": arityOne,
	"-async-proofs": arityOne,
	"-async-proofs-j": arityOne,
	"-async-proofs-private-flags": arityOne,
	"-main-channel": arityOne,
	"-control-channel": arityOne,

	// two-argument flags (library path bindings)
	"-R": arityTwo,
	"-Q": arityTwo,

	// variadic flags: one mandatory token, then everything up to the
	// next flag-looking token; their presence waives the file requirement
	"-schedule-vio-checking": arityVariadic,
	"-vio2vo": arityVariadic,
	"-check-vio-tasks": arityVariadic,
	"-schedule-vio2vo": arityVariadic,
}

// looksLikeFlag reports whether a token terminates a variadic group: more
// than one character long and starting with '-'. A bare "-" is a file.
func looksLikeFlag(tok string) bool {
	return len(tok) > 1 && tok[0] == '-'
}

// Classify walks args left to right, bucketing tokens into compile units
// and pass-through flags. Tokens matching no flag rule are handed to res;
// its first error aborts the pass. Malformed flag groups yield usage
// errors satisfying errors.Is(err, issue.ErrUsage).
func Classify(args []string, res Resolver) (*Invocation, error) {
	inv := &Invocation{Action: ActionCompile}

	for i := 0; i < len(args); i++ {
		tok := args[i]

		switch tok {
		case "-verbose", "--verbose":
			inv.Verbose = true
			continue
		case "-image":
			if i+1 >= len(args) {
				return nil, issue.Usage("missing path after -image")
			}
			inv.Deprecated = append(inv.Deprecated, "-image")
			inv.Image = args[i+1]
			i++
			continue
		case "-byte":
			inv.Deprecated = append(inv.Deprecated, "-byte")
			inv.UseBytecode = boolPtr(true)
			continue
		case "-opt":
			inv.Deprecated = append(inv.Deprecated, "-opt")
			inv.UseBytecode = boolPtr(false)
			continue
		case "-?", "-h", "-H", "-help", "--help":
			inv.Action = ActionUsage
			return inv, nil
		case "-v", "--version":
			inv.Action = ActionVersion
			return inv, nil
		case "-where":
			inv.Action = ActionWhere
			return inv, nil
		case "-config", "--config":
			inv.Action = ActionConfig
			return inv, nil
		case "-print-version", "--print-version":
			inv.Action = ActionPrintVersion
			return inv, nil
		}

		if ar, known := flagTable[tok]; known {
			var err error
			i, err = consume(inv, args, i, ar)
			if err != nil {
				return nil, err
			}
			continue
		}

		// Not a flag: candidate compile unit.
		path, err := res.File(tok)
		if err != nil {
			return nil, err
		}
		inv.Files = append(inv.Files, path)
	}

	return inv, nil
}

// consume appends the flag group starting at args[i] to the passthrough
// accumulator and returns the index of the group's last token.
func consume(inv *Invocation, args []string, i int, ar arity) (int, error) {
	tok := args[i]

	switch ar {
	case arityZero:
		inv.Passthrough = append(inv.Passthrough, tok)

	case arityOne:
		if i+1 >= len(args) {
			return i, issue.Usage(fmt.Sprintf("missing argument after %s", tok))
		}
		inv.Passthrough = append(inv.Passthrough, tok, args[i+1])
		i++

	case arityTwo:
		if i+2 >= len(args) {
			return i, issue.Usage(fmt.Sprintf("missing arguments after %s", tok))
		}
		inv.Passthrough = append(inv.Passthrough, tok, args[i+1], args[i+2])
		i += 2

	case arityVariadic:
		if i+1 >= len(args) {
			return i, issue.Usage(fmt.Sprintf("missing argument after %s", tok))
		}
		group := []string{tok, args[i+1]}
		i++
		for i+1 < len(args) && !looksLikeFlag(args[i+1]) {
			i++
			group = append(group, args[i])
		}
		inv.Passthrough = append(inv.Passthrough, group...)
		inv.FilesWaived = true
	}

	return i, nil
}

func boolPtr(b bool) *bool { return &b }
