// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command-line parsing for devconsole.
package cli

import (
	"fmt"
	"io"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdREPL
	CmdRun
	CmdMacros
	CmdConfig
	CmdVersion
	CmdHelp
	CmdUnknown
)

// String returns the subcommand name.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdREPL:
		return "repl"
	case CmdRun:
		return "run"
	case CmdMacros:
		return "macros"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath string // --config FILE overrides ~/.devconsole/config.toml
	MacroPath  string // --macros FILE overrides macros.path
	Verbose    bool
	Quiet      bool
	NoColor    bool

	// Subcommand is the first word after the command (e.g. "check")
	Subcommand string

	// Raw holds the arguments after the command, flags included
	Raw []string

	// Unknown is the command word when Parse returned CmdUnknown
	Unknown string
}

const usageText = `devconsole - in-process developer console

Usage:
  devconsole [flags]                 Start the console TUI (default)
  devconsole repl                    Line-mode console; reads a script when stdin is piped
  devconsole run <line>...           Post each line to the console and exit
  devconsole macros check <file>     Validate a macro listing
  devconsole macros list             List the configured macros
  devconsole config show             Print the effective configuration
  devconsole config path             Print the configuration file path
  devconsole config init [--force]   Write a default configuration file
  devconsole version                 Print version information
  devconsole help                    Show this help

Flags:
  --config FILE      Configuration file (TOML or JSON)
  --macros FILE      Macro listing (XML, TOML, JSON or YAML)
  -v, --verbose      Turn on console.verbose
  -q, --quiet        Turn off console.logCommands
  --no-color         Disable colored output

Inside the console:
  help [filter]      List commands
  man <command>      Describe a command
  `+"`"+`                  Show or hide the console (TUI)

Version: %s
`

// PrintUsage writes the usage text to w.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, Version)
}

// PrintVersion writes version information to w.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "devconsole version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments (without the program name) and
// returns the command and args.
func Parse(argv []string) (Command, Args) {
	remaining, parsed := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, parsed
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsed.Raw = remaining
	if len(remaining) > 0 {
		parsed.Subcommand = remaining[0]
	}

	switch cmd {
	case "tui":
		return CmdTUI, parsed
	case "repl", "shell":
		return CmdREPL, parsed
	case "run", "exec":
		return CmdRun, parsed
	case "macros", "macro":
		return CmdMacros, parsed
	case "config":
		return CmdConfig, parsed
	case "version", "--version":
		return CmdVersion, parsed
	case "help", "-h", "--help":
		return CmdHelp, parsed
	default:
		parsed.Unknown = cmd
		return CmdUnknown, parsed
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
// Global flags are recognised anywhere on the line, except after "run" where
// every argument is a console line.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsed Args

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if len(remaining) > 0 && isRunCommand(remaining[0]) {
			remaining = append(remaining, arg)
			continue
		}

		switch arg {
		case "-v", "--verbose":
			parsed.Verbose = true
		case "-q", "--quiet":
			parsed.Quiet = true
		case "--no-color":
			parsed.NoColor = true
		case "--config":
			if i+1 < len(args) {
				i++
				parsed.ConfigPath = args[i]
			}
		case "--macros":
			if i+1 < len(args) {
				i++
				parsed.MacroPath = args[i]
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--config="):
				parsed.ConfigPath = strings.TrimPrefix(arg, "--config=")
			case strings.HasPrefix(arg, "--macros="):
				parsed.MacroPath = strings.TrimPrefix(arg, "--macros=")
			default:
				remaining = append(remaining, arg)
			}
		}
	}

	return remaining, parsed
}

func isRunCommand(word string) bool {
	w := strings.ToLower(word)
	return w == "run" || w == "exec"
}
