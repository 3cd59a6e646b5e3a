// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// suggest.go - Command suggestion for typo correction.
package cli

import "github.com/jeranaias/devconsole/internal/commands"

// validCommands lists every command word Parse accepts.
var validCommands = []string{
	"tui",
	"repl",
	"run",
	"macros",
	"config",
	"version",
	"help",
	// Aliases
	"shell",
	"exec",
	"macro",
}

// SuggestCommand returns the command closest to input, or "" when nothing
// is close enough.
func SuggestCommand(input string) string {
	return commands.Suggest(input, validCommands)
}

func suggestFrom(input string, candidates ...string) string {
	return commands.Suggest(input, candidates)
}
