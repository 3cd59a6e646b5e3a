// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package macro implements named, parameterized command templates.
//
// A macro expands into one or more console lines. Each template may
// reference its arguments as %id; expansion replaces every occurrence with
// the provided value or the argument's default.
//
// # Triggers
//
// A macro fires when:
//   - a line "macro.<commandName> [args...]" is posted on the bus
//   - its trigger key is pressed while the console is hidden (defaults only)
//
// # Validation
//
// A listing is checked once, at load time. Invalid or duplicate trigger keys
// are dropped with a warning. Missing or duplicate command names and required
// arguments after optional ones are fatal: the engine refuses to start and no
// macro from the listing is reachable.
//
// # Listing Files
//
// LoadFile reads XML, TOML, JSON or YAML listings, chosen by extension.
// Watcher reports edits to a listing file so hosts can reload it.
package macro
