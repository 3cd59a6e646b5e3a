// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/devconsole/internal/bus"
)

// Theme holds the styles used by the console TUI.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Header and status bar
	Header    lipgloss.Style
	StatusBar lipgloss.Style
	Hint      lipgloss.Style

	// Transcript lines, by level
	Info      lipgloss.Style
	Verbose   lipgloss.Style
	Warn      lipgloss.Style
	Error     lipgloss.Style
	Timestamp lipgloss.Style

	// Input line
	Prompt    lipgloss.Style
	InputText lipgloss.Style

	// Suggestion stack
	SuggestionMarker   lipgloss.Style
	SuggestionEmphasis lipgloss.Style
	SuggestionRest     lipgloss.Style
	SuggestionSelected lipgloss.Style
}

// NewTheme creates a theme for the current terminal.
func NewTheme() *Theme {
	t := &Theme{
		ColorProfile: termenv.ColorProfile(),
		IsDark:       termenv.HasDarkBackground(),
	}
	t.HasTrueColor = t.ColorProfile == termenv.TrueColor
	t.initStyles()
	return t
}

func (t *Theme) initStyles() {
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(CyanDeep).
		Padding(0, 1)
	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim)
	t.Hint = lipgloss.NewStyle().Foreground(TextMuted).Italic(true)

	t.Info = lipgloss.NewStyle().Foreground(TextPrimary)
	t.Verbose = lipgloss.NewStyle().Foreground(TextSecondary)
	t.Warn = lipgloss.NewStyle().Foreground(Amber)
	t.Error = lipgloss.NewStyle().Foreground(Rose).Bold(true)
	t.Timestamp = lipgloss.NewStyle().Foreground(TextMuted)

	t.Prompt = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	t.InputText = lipgloss.NewStyle().Foreground(TextPrimary)

	t.SuggestionMarker = lipgloss.NewStyle().Foreground(Purple).Bold(true)
	t.SuggestionEmphasis = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	t.SuggestionRest = lipgloss.NewStyle().Foreground(TextMuted)
	t.SuggestionSelected = lipgloss.NewStyle().Foreground(Purple).Bold(true)
}

// LineStyle returns the style for a transcript line of the given level.
func (t *Theme) LineStyle(level bus.Level) lipgloss.Style {
	switch level {
	case bus.LevelVerbose:
		return t.Verbose
	case bus.LevelWarn:
		return t.Warn
	case bus.LevelError:
		return t.Error
	default:
		return t.Info
	}
}

// LevelIndicator returns the text marker for a level.
func LevelIndicator(level bus.Level) string {
	switch level {
	case bus.LevelVerbose:
		return LevelIndicators.Verbose
	case bus.LevelWarn:
		return LevelIndicators.Warning
	case bus.LevelError:
		return LevelIndicators.Error
	default:
		return LevelIndicators.Info
	}
}
