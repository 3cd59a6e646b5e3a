// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// =============================================================================
// COMMAND
// =============================================================================

// Command is one parsed input line: a name and its positional arguments.
// Commands are values; nothing mutates one after Parse returns it.
type Command struct {
	// Msg is the command name, optionally dotted (e.g. "console.verbose")
	Msg string

	// Args are the positional arguments in input order
	Args []string
}

// NewCommand builds a command from a name and arguments.
func NewCommand(msg string, args ...string) Command {
	return Command{Msg: msg, Args: args}
}

// String formats the command for the transcript, e.g.
// "Command: [spawn.cube, (1, 2, 3)]".
func (c Command) String() string {
	return "Command: [" + c.Msg + ", (" + strings.Join(c.Args, ", ") + ")]"
}

// =============================================================================
// PARSER
// =============================================================================

// Parse turns a raw input line into a Command.
//
// The line is trimmed and split at the first whitespace character. The
// remainder is tokenized left to right: a double-quoted run is one token, any
// other maximal run of non-space characters is one token. Quote characters
// are stripped from every token, so a literal '"' cannot appear in an
// argument. An unterminated quote swallows the rest of the line as one token.
// Parse never fails.
func Parse(raw string) Command {
	raw = strings.TrimSpace(raw)

	end := strings.IndexFunc(raw, unicode.IsSpace)
	if end == -1 {
		return Command{Msg: raw}
	}

	return Command{
		Msg:  raw[:end],
		Args: ParseArgs(raw[end:]),
	}
}

// ParseArgs tokenizes an argument string using the same rules as Parse.
func ParseArgs(input string) []string {
	var tokens []string

	i := 0
	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}

		var token string
		if r == '"' {
			token, i = scanQuoted(input, i)
		} else {
			token, i = scanBare(input, i)
		}
		tokens = append(tokens, strings.ReplaceAll(token, `"`, ""))
	}

	return tokens
}

// scanQuoted reads a quoted run starting at the opening quote at start.
func scanQuoted(input string, start int) (string, int) {
	closing := strings.IndexByte(input[start+1:], '"')
	if closing == -1 {
		// Unterminated: the rest of the line is one token.
		return input[start:], len(input)
	}
	end := start + 1 + closing + 1
	return input[start:end], end
}

// scanBare reads a maximal run of non-space characters.
func scanBare(input string, start int) (string, int) {
	end := strings.IndexFunc(input[start:], unicode.IsSpace)
	if end == -1 {
		return input[start:], len(input)
	}
	return input[start : start+end], start + end
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// CommandName extracts just the command name from input.
// e.g., "spawn.cube 1 2 3" -> "spawn.cube"
func CommandName(input string) string {
	return Parse(input).Msg
}
