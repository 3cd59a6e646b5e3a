// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the console packages.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth, StringWidth, PadRight: terminal-cell aware layout
//   - TrimLines: per-line whitespace cleanup for multi-line descriptions
//
// Parsing:
//   - ParseBool: lenient boolean parsing for console arguments
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	line := util.TruncateWidth(suggestion, width)
//	on, err := util.ParseBool(cmd.Args[0])
//	err := util.AtomicWriteFile(path, data, 0644)
package util
