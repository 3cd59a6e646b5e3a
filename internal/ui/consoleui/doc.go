// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package consoleui hosts a console in a Bubble Tea terminal UI.
//
// The toggle key (backquote by default) shows and hides the console. While
// it is shown:
//
//	Tab          accept the selected suggestion
//	PgUp/PgDn    move the suggestion cursor
//	Enter        submit the line
//	Up/Down      walk input history
//	Ctrl+L       clear the transcript
//	Esc          hide the console
//
// While it is hidden, key presses are collected and handed to the macro
// engine on every tick. Ctrl+C quits.
package consoleui
