// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import "strings"

// SelectedMarker prefixes the selected suggestion in plain text rendering.
const SelectedMarker = ">>"

// =============================================================================
// SUGGESTION RENDERING
// =============================================================================

// SuggestionLine is one rendered suggestion. Emphasis is the part that
// matches what the user typed; Rest follows it unemphasized. Hosts style the
// two halves however they like.
type SuggestionLine struct {
	Selected bool
	Emphasis string
	Rest     string
}

// Plain renders the line as text with marker in front of the selected line.
func (l SuggestionLine) Plain(marker string) string {
	if l.Selected {
		return marker + l.Emphasis + l.Rest
	}
	return l.Emphasis + l.Rest
}

// Render formats the current suggestions for display. The result is in
// display order: the first suggestion comes last, so it sits right above
// the input line when the host stacks lines top to bottom.
func (c *Completer) Render() []SuggestionLine {
	lines := make([]SuggestionLine, len(c.suggestions))
	for i, d := range c.suggestions {
		line := formatSuggestion(c.partial, d, c.manMode)
		line.Selected = i == c.cursor
		lines[len(lines)-1-i] = line
	}
	return lines
}

// RenderPlain renders every suggestion as plain text, in display order.
func (c *Completer) RenderPlain() []string {
	lines := c.Render()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Plain(SelectedMarker)
	}
	return out
}

// formatSuggestion splits one descriptor into emphasized and plain halves.
//
// With typed arguments, emphasis covers the name and the arguments up to and
// including the last one typed. With none, emphasis covers the typed prefix
// of the name and the argument list follows (omitted in man mode, where the
// suggestion is a command name rather than something to fill in).
func formatSuggestion(input Command, d CommandDescriptor, manMode bool) SuggestionLine {
	numArgs := len(input.Args)
	if numArgs > len(d.Args) {
		return SuggestionLine{}
	}

	var emph, rest strings.Builder
	if manMode {
		emph.WriteString(manVerb + " ")
	}

	if numArgs > 0 {
		emph.WriteString(d.Msg)
		for i, arg := range d.Args {
			target := &emph
			if i >= numArgs {
				target = &rest
			}
			target.WriteByte(' ')
			target.WriteString(arg.String())
		}
		return SuggestionLine{Emphasis: emph.String(), Rest: rest.String()}
	}

	typed := min(len(input.Msg), len(d.Msg))
	emph.WriteString(d.Msg[:typed])
	rest.WriteString(d.Msg[typed:])
	if !manMode {
		for _, arg := range d.Args {
			rest.WriteByte(' ')
			rest.WriteString(arg.String())
		}
	}
	return SuggestionLine{Emphasis: emph.String(), Rest: rest.String()}
}
