// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the command model for the developer console.
//
// This package turns typed lines into commands, stores the descriptors that
// subscribers advertise, and drives the suggestion list shown while typing.
//
// # Key Types
//
//   - Command: A parsed line, name plus positional args
//   - CommandDescriptor: Name, description and argument shapes for help
//   - Registry: Ordered multi-map of descriptors keyed by name
//   - Completer: Bounded suggestion list with a non-wrapping cursor
//   - SuggestionLine: One rendered suggestion, split into matched and rest
//
// # Usage
//
// Parse a line:
//
//	cmd := commands.Parse(`spawn.cube 1 "2" 3`)
//	// cmd.Msg == "spawn.cube", cmd.Args == ["1", "2", "3"]
//
// Get suggestions:
//
//	completer := commands.NewCompleter(registry)
//	if completer.Update(commands.Parse("spa")) {
//	    for _, line := range completer.RenderPlain() {
//	        fmt.Println(line)
//	    }
//	}
package commands
