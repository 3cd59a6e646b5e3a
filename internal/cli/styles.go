// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Styled line output for the line-mode commands.

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/devconsole/internal/bus"
	"github.com/jeranaias/devconsole/internal/ui/styles"
)

// Printer writes console lines to a stream. It implements bus.Output, so it
// can be handed to console.WithOutput.
type Printer struct {
	w io.Writer

	Prompt  lipgloss.Style
	Info    lipgloss.Style
	Verbose lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Dim     lipgloss.Style
}

// NewPrinter creates a printer for w using the given color profile.
// termenv.Ascii produces plain text.
func NewPrinter(w io.Writer, profile termenv.Profile) *Printer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)

	return &Printer{
		w:       w,
		Prompt:  r.NewStyle().Foreground(styles.Cyan).Bold(true),
		Info:    r.NewStyle().Foreground(styles.TextPrimary),
		Verbose: r.NewStyle().Foreground(styles.TextSecondary),
		Warn:    r.NewStyle().Foreground(styles.Amber),
		Error:   r.NewStyle().Foreground(styles.Rose).Bold(true),
		Success: r.NewStyle().Foreground(styles.Purple),
		Dim:     r.NewStyle().Foreground(styles.TextMuted),
	}
}

// WriteLine implements bus.Output.
func (p *Printer) WriteLine(l bus.Line) {
	text := l.Text
	if ind := styles.LevelIndicator(l.Level); ind != "" {
		text = ind + " " + text
	}
	fmt.Fprintln(p.w, p.style(l.Level).Render(text))
}

func (p *Printer) style(level bus.Level) lipgloss.Style {
	switch level {
	case bus.LevelVerbose:
		return p.Verbose
	case bus.LevelWarn:
		return p.Warn
	case bus.LevelError:
		return p.Error
	default:
		return p.Info
	}
}

// Printf writes a formatted line in the info style.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintln(p.w, p.Info.Render(fmt.Sprintf(format, args...)))
}

// Errorf writes a formatted line in the error style.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintln(p.w, p.Error.Render(fmt.Sprintf(format, args...)))
}

// Warnf writes a formatted line in the warning style.
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintln(p.w, p.Warn.Render(fmt.Sprintf(format, args...)))
}
