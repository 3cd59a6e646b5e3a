// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the line-mode hosts for
// devconsole.
//
// # Key Types
//
//   - Command: Enumeration of the CLI commands
//   - Args: Parsed global flags and the arguments after the command
//   - Printer: bus.Output that writes styled console lines to a stream
//
// # Usage
//
//	cmd, args := cli.Parse(os.Args[1:])
//	switch cmd {
//	case cli.CmdREPL:
//	    return cli.RunREPL(c, printer, os.Stdin, cli.IsTTY())
//	case cli.CmdRun:
//	    return cli.RunLines(c, args.Raw)
//	// ... other commands
//	}
//
// Interactive sessions edit lines with liner and complete command names from
// the console registry. When stdin is not a terminal the REPL reads a script
// instead, one console line per input line.
package cli
