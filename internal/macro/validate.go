// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package macro

import (
	"fmt"
	"strings"

	"github.com/jeranaias/devconsole/internal/commands"
	"github.com/jeranaias/devconsole/internal/keys"
	"github.com/jeranaias/devconsole/internal/util"
)

// KeyValidator reports whether a trigger key name can be bound.
type KeyValidator func(name string) bool

// Warning is a non-fatal problem found while validating a listing.
type Warning struct {
	Macro   int
	Message string
}

func (w Warning) String() string {
	return w.Message
}

// ValidationError is a fatal problem with one macro.
type ValidationError struct {
	Macro int

	// Arg is the offending argument index, or -1
	Arg int

	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors collects every fatal problem in a listing.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d macro errors: %s", len(e), strings.Join(msgs, "; "))
}

// Validate checks a listing and returns a cleaned copy of it. The input is
// not modified.
//
// Trigger keys that keyValid rejects, or that an earlier macro already uses,
// are dropped and reported as warnings. Fatal problems are a missing or
// repeated command name, an argument id repeated within one macro, and a
// required argument following an optional one. In that case the returned
// listing is nil and err is a ValidationErrors. A nil keyValid uses
// keys.Valid.
func Validate(l *Listing, keyValid KeyValidator) (*Listing, []Warning, error) {
	if keyValid == nil {
		keyValid = keys.Valid
	}
	if l == nil {
		return &Listing{}, nil, nil
	}

	var (
		warnings []Warning
		errs     ValidationErrors
	)
	out := &Listing{Macros: make([]Definition, len(l.Macros))}
	usedKeys := make(map[string]bool)
	usedNames := make(map[string]bool)

	for i, src := range l.Macros {
		def := src.clone()
		def.Desc = util.TrimLines(def.Desc)

		if def.TriggerKey != "" {
			key := canonicalKey(def.TriggerKey)
			switch {
			case !keyValid(def.TriggerKey):
				warnings = append(warnings, Warning{
					Macro:   i,
					Message: fmt.Sprintf("Macro %d attribute `keyName` has invalid key: %s. Removing keyName.", i, def.TriggerKey),
				})
				def.TriggerKey = ""
			case usedKeys[key]:
				warnings = append(warnings, Warning{
					Macro:   i,
					Message: fmt.Sprintf("Macro %d attribute `keyName` %s is already in use. Removing keyName.", i, def.TriggerKey),
				})
				def.TriggerKey = ""
			default:
				usedKeys[key] = true
				def.TriggerKey = key
			}
		}

		switch {
		case def.CommandName == "":
			errs = append(errs, ValidationError{
				Macro:   i,
				Arg:     -1,
				Message: fmt.Sprintf("Macro %d missing required attribute `commandName`", i),
			})
		case usedNames[def.CommandName]:
			errs = append(errs, ValidationError{
				Macro:   i,
				Arg:     -1,
				Message: fmt.Sprintf("Macro %d `commandName` %s is already in use. Choose a different command name.", i, def.CommandName),
			})
		default:
			usedNames[def.CommandName] = true
		}

		seenArgs := make(map[string]bool, len(def.Args))
		for j, arg := range def.Args {
			if arg.ID == "" {
				continue
			}
			if seenArgs[arg.ID] {
				errs = append(errs, ValidationError{
					Macro:   i,
					Arg:     j,
					Message: fmt.Sprintf("Macro %d, Arg %d id `%s` is already in use. Choose a different id.", i, j, arg.ID),
				})
			}
			seenArgs[arg.ID] = true
		}

		if j := commands.FirstRequiredAfterOptional(def.Descriptor().Args); j >= 0 {
			errs = append(errs, ValidationError{
				Macro:   i,
				Arg:     j,
				Message: fmt.Sprintf("Macro %d, Arg %d is required but follows an optional argument.", i, j),
			})
		}

		out.Macros[i] = def
	}

	if len(errs) > 0 {
		return nil, warnings, errs
	}
	return out, warnings, nil
}

// canonicalKey folds key aliases together so "F5" and "f5" collide.
// Names the keys package doesn't know are compared verbatim.
func canonicalKey(name string) string {
	if k, err := keys.Normalize(name); err == nil {
		return k
	}
	return name
}
