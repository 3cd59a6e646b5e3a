// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package bus implements the console's command bus.
//
// A Bus holds an ordered list of subscribers. Posting a line echoes it,
// parses it with commands.Parse and hands the command to every subscriber in
// order. There is no routing: subscribers ignore what they don't own, and a
// command nobody owns is silently dropped.
//
// # Key Types
//
//   - Bus: Ordered broadcast dispatcher plus console output and flags
//   - Subscriber: HandleCommand + Commands, implemented by participants
//   - Output, Line, Level: Where console lines go and how severe they are
//   - HandlerError: A handler failure or recovered panic
//
// # Built-in Commands
//
//   - console.verbose [bool]: Gate verbose output
//   - console.logCommands [bool]: Echo every dispatched command
//   - console.logToHost [bool]: Forward output to the host log (alias console.logToUnity)
//   - console.subscribers: List subscribers
//   - console.clear: Reserved, warns that it is not implemented
//   - help [filter]: List descriptors
//   - man <name>: Print a man page
//
// # Usage
//
//	b := bus.New(commands.NewRegistry(), bus.DefaultOptions())
//	b.Subscribe(spawner)
//	b.Post("spawn.cube 0 1 0")
package bus
