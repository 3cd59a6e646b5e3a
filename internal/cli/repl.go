// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Line-mode console host.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/devconsole/internal/commands"
	"github.com/jeranaias/devconsole/internal/console"
	"github.com/jeranaias/devconsole/internal/logging"
)

// Prompt is shown before each interactive line.
const Prompt = "devconsole> "

// ErrLinesFailed is returned when one or more lines of a script or run
// invocation produced a handler error.
var ErrLinesFailed = errors.New("one or more lines failed")

// RunREPL reads lines and submits them to c until EOF, Ctrl+C or "exit".
// With interactive set it edits lines through liner, completing command names
// on Tab; otherwise it treats in as a script, skipping blank lines and
// lines starting with '#'.
func RunREPL(c *console.Console, p *Printer, in io.Reader, interactive bool) error {
	if !interactive {
		return RunScript(c, in)
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(input string) []string {
		return Completions(c.Registry(), input)
	})

	p.Printf("devconsole %s - type help, man <command>, or exit", Version)
	for {
		input, err := line.Prompt(Prompt)
		if err != nil {
			// Ctrl+C and Ctrl+D both end the session
			if !errors.Is(err, liner.ErrPromptAborted) && !errors.Is(err, io.EOF) {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			return nil
		}

		line.AppendHistory(input)
		// Handler errors were already printed.
		_ = c.Submit(input)
	}
}

// RunScript submits every line of in to c.
func RunScript(c *console.Console, in io.Reader) error {
	log := logging.L().With("component", "script")

	scanner := bufio.NewScanner(in)
	failed := 0
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := c.Submit(text); err != nil {
			log.Debugw("line failed", "line", n, "error", err)
			failed++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrLinesFailed, failed, n)
	}
	return nil
}

// RunLines submits each line to c in order.
func RunLines(c *console.Console, lines []string) error {
	failed := 0
	for _, l := range lines {
		if err := c.Submit(l); err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrLinesFailed, failed, len(lines))
	}
	return nil
}

// Completions returns Tab completions for input: command names while the
// first word is being typed, and for "man <name>" the man argument.
func Completions(reg *commands.Registry, input string) []string {
	trimmed := strings.TrimLeft(input, " \t")

	prefix := ""
	word := trimmed
	if rest, ok := strings.CutPrefix(trimmed, "man "); ok {
		prefix = "man "
		word = strings.TrimLeft(rest, " \t")
	}
	if strings.ContainsAny(word, " \t") {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	for _, d := range reg.Prefixed(word) {
		if seen[d.Msg] {
			continue
		}
		seen[d.Msg] = true
		out = append(out, prefix+d.Msg)
	}
	return out
}
