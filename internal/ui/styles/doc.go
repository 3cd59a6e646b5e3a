// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the devconsole TUI.

# Color System (colors.go)

All colors are Lip Gloss AdaptiveColor values, so they follow the terminal's
light or dark background:

  - Cyan - prompt and the typed part of suggestions
  - Purple - selected suggestion
  - Amber - warning lines
  - Rose - error lines

# Theme (theme.go)

Theme bundles the lipgloss styles for the header, transcript, input line,
suggestion stack and status bar. LineStyle picks the transcript style for a
console line level.

# Accessibility

Warning, error and verbose lines also carry an ASCII marker (see
LevelIndicators) so they can be told apart without color.
*/
package styles
