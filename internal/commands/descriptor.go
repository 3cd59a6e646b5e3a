// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strings"
)

// =============================================================================
// ARGUMENT DESCRIPTOR
// =============================================================================

// ArgType is the advisory type of an argument. The console never enforces
// it; it is shown in help and suggestions so the user knows what to type.
type ArgType string

const (
	ArgString ArgType = "string"
	ArgInt    ArgType = "int"
	ArgFloat  ArgType = "float"
	ArgBool   ArgType = "bool"
)

// ArgDescriptor describes one positional argument of a command.
type ArgDescriptor struct {
	// Name of the argument
	Name string

	// Type is shown as the "type:" prefix in listings
	Type ArgType

	// Optional arguments render in brackets and must trail required ones
	Optional bool

	// Desc is a one line description used by man pages
	Desc string
}

// String formats the argument as "type:name", or "[type:name]" if optional.
func (a ArgDescriptor) String() string {
	s := string(a.Type) + ":" + a.Name
	if a.Optional {
		return "[" + s + "]"
	}
	return s
}

// =============================================================================
// COMMAND DESCRIPTOR
// =============================================================================

// CommandDescriptor is the metadata a subscriber advertises for one command
// it handles. Equality is structural: two descriptors are the same only if
// Msg, Desc and every argument match.
type CommandDescriptor struct {
	// Msg is the command name the subscriber listens for
	Msg string

	// Desc is the long form description shown by man
	Desc string

	// Args describe the positional arguments in order
	Args []ArgDescriptor
}

// String formats the descriptor as its name followed by each argument,
// e.g. "spawn.cube float:X float:Y float:Z".
func (d CommandDescriptor) String() string {
	var b strings.Builder
	b.WriteString(d.Msg)
	for _, arg := range d.Args {
		b.WriteByte(' ')
		b.WriteString(arg.String())
	}
	return b.String()
}

// ManPage returns the long form description: the name, the description, and
// one "@ arg - desc" line per argument.
func (d CommandDescriptor) ManPage() string {
	var b strings.Builder
	b.WriteString(d.Msg)
	b.WriteByte('\n')
	b.WriteString(d.Desc)
	for _, arg := range d.Args {
		b.WriteString("\n@ ")
		b.WriteString(arg.String())
		b.WriteString(" - ")
		b.WriteString(arg.Desc)
	}
	return b.String()
}

// Equal reports whether two descriptors are structurally identical.
func (d CommandDescriptor) Equal(other CommandDescriptor) bool {
	if d.Msg != other.Msg || d.Desc != other.Desc || len(d.Args) != len(other.Args) {
		return false
	}
	for i := range d.Args {
		if d.Args[i] != other.Args[i] {
			return false
		}
	}
	return true
}

// =============================================================================
// VALIDATION
// =============================================================================

// ArgOrderError reports a required argument that follows an optional one.
type ArgOrderError struct {
	Command string
	Index   int
	Arg     string
}

// Error implements the error interface.
func (e *ArgOrderError) Error() string {
	return fmt.Sprintf("%s: argument %d (%s) is required but follows an optional argument",
		e.Command, e.Index, e.Arg)
}

// Validate checks the trailing-optional rule: once an argument is optional,
// every argument after it must be optional too.
func (d CommandDescriptor) Validate() error {
	if i := FirstRequiredAfterOptional(d.Args); i >= 0 {
		return &ArgOrderError{Command: d.Msg, Index: i, Arg: d.Args[i].Name}
	}
	return nil
}

// FirstRequiredAfterOptional returns the index of the first required
// argument that follows an optional one, or -1 if the list is well formed.
func FirstRequiredAfterOptional(args []ArgDescriptor) int {
	seenOptional := false
	for i, arg := range args {
		if arg.Optional {
			seenOptional = true
			continue
		}
		if seenOptional {
			return i
		}
	}
	return -1
}
