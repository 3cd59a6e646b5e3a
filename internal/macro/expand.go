// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package macro

import (
	"fmt"
	"sort"
	"strings"
)

// MissingArgumentError is returned when a required argument was not
// provided.
type MissingArgumentError struct {
	// Macro is the command name of the macro being expanded
	Macro string

	ArgIndex int
}

// Error implements the error interface.
func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("Macro Error: Argument %d is required.", e.ArgIndex)
}

// Expand fills in def's templates from provided, positionally. Arguments
// not provided fall back to their default. If a required argument is
// missing nothing is returned.
//
// Extra provided values are ignored.
func Expand(def Definition, provided []string) ([]string, error) {
	values := make([]string, len(def.Args))
	for i, arg := range def.Args {
		switch {
		case i < len(provided):
			values[i] = provided[i]
		case arg.Optional():
			values[i] = arg.Default
		default:
			return nil, &MissingArgumentError{Macro: def.CommandName, ArgIndex: i}
		}
	}
	return substitute(def, values), nil
}

// ExpandDefaults expands def using every argument's default as is, even
// when it is empty. Key triggers have no way to provide arguments.
func ExpandDefaults(def Definition) []string {
	values := make([]string, len(def.Args))
	for i, arg := range def.Args {
		values[i] = arg.Default
	}
	return substitute(def, values)
}

// substitute replaces every %id in the templates in a single pass. Longer
// ids are tried first so %x never eats the start of %xy, and substituted
// values are never rescanned.
func substitute(def Definition, values []string) []string {
	type pair struct{ ref, value string }
	pairs := make([]pair, 0, len(def.Args))
	for i, arg := range def.Args {
		if arg.ID == "" {
			continue
		}
		pairs = append(pairs, pair{ArgPrefix + arg.ID, values[i]})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return len(pairs[i].ref) > len(pairs[j].ref)
	})

	oldnew := make([]string, 0, 2*len(pairs))
	for _, p := range pairs {
		oldnew = append(oldnew, p.ref, p.value)
	}
	r := strings.NewReplacer(oldnew...)

	out := make([]string, len(def.Commands))
	for i, tmpl := range def.Commands {
		out[i] = r.Replace(tmpl)
	}
	return out
}
