// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// macros_cmd.go - Macro listing checks outside the console.

package cli

import (
	"errors"
	"fmt"

	"github.com/jeranaias/devconsole/internal/config"
	"github.com/jeranaias/devconsole/internal/keys"
	"github.com/jeranaias/devconsole/internal/macro"
	"github.com/jeranaias/devconsole/internal/util"
)

// ErrNoMacroPath is returned when no listing was named and none is
// configured.
var ErrNoMacroPath = errors.New("no macro listing given and macros.path is not set")

// HandleMacros runs `macros check [file]` and `macros list [file]`. Without
// a file both use the configured listing.
func HandleMacros(cfg *config.Config, args Args, p *Printer) error {
	parser := NewArgParser(args.Raw)
	sub := parser.Subcommand()
	if sub == "" {
		sub = "check"
	}

	path := parser.Positional(1)
	if path == "" {
		path = cfg.Macros.Path
	}

	switch sub {
	case "check", "validate":
		if path == "" {
			return ErrNoMacroPath
		}
		_, err := checkMacros(path, p, false)
		return err
	case "list", "ls":
		if path == "" {
			return ErrNoMacroPath
		}
		_, err := checkMacros(path, p, true)
		return err
	default:
		if s := SuggestMacrosSubcommand(sub); s != "" {
			return fmt.Errorf("unknown macros subcommand %q (did you mean %q?)", sub, s)
		}
		return fmt.Errorf("unknown macros subcommand %q", sub)
	}
}

// checkMacros loads and validates path, printing every warning and error.
// With list set, each macro's signature and trigger key is printed too.
func checkMacros(path string, p *Printer, list bool) (*macro.Listing, error) {
	listing, err := macro.LoadFile(path)
	if err != nil {
		p.Errorf("%v", err)
		return nil, err
	}

	valid, warnings, err := macro.Validate(listing, keys.Valid)
	for _, w := range warnings {
		p.Warnf("=> %s", w)
	}
	if err != nil {
		var verrs macro.ValidationErrors
		if errors.As(err, &verrs) {
			for _, e := range verrs {
				p.Errorf("=> %s", e.Message)
			}
		} else {
			p.Errorf("=> %v", err)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if list {
		sigs := make([]string, len(valid.Macros))
		width := 0
		for i, def := range valid.Macros {
			sigs[i] = def.Descriptor().String()
			width = max(width, util.StringWidth(sigs[i]))
		}
		// Trigger keys line up in one column.
		for i, def := range valid.Macros {
			if def.TriggerKey == "" {
				p.Printf("%s", sigs[i])
				continue
			}
			p.Printf("%s%s", util.PadRight(sigs[i], width), p.Dim.Render(" ["+def.TriggerKey+"]"))
		}
	}
	fmt.Fprintln(p.w, p.Success.Render(fmt.Sprintf("%s: %d macros OK, %d warnings", path, len(valid.Macros), len(warnings))))
	return valid, nil
}

// SuggestMacrosSubcommand returns the closest macros subcommand to input.
func SuggestMacrosSubcommand(input string) string {
	return suggestFrom(input, "check", "validate", "list", "ls")
}
