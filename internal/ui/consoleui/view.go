// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package consoleui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/devconsole/internal/bus"
	"github.com/jeranaias/devconsole/internal/commands"
	"github.com/jeranaias/devconsole/internal/ui/styles"
	"github.com/jeranaias/devconsole/internal/util"
)

// View implements tea.Model.
func (m Model) View() string {
	var parts []string
	if !m.cfg.UI.CompactMode {
		parts = append(parts, m.renderHeader())
	}
	parts = append(parts, m.viewport.View())
	if suggestions := m.renderSuggestions(); len(suggestions) > 0 {
		parts = append(parts, suggestions...)
	}
	if m.console.Active() {
		parts = append(parts, m.input.View())
	} else {
		parts = append(parts, m.theme.Hint.Render(fmt.Sprintf("Press %s to open the console", m.toggleKey)))
	}
	parts = append(parts, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// refresh recomputes the layout and transcript content.
func (m *Model) refresh() {
	m.input.Width = max(m.width-lipgloss.Width(m.input.Prompt)-1, 1)

	used := 2 // input or hint line, status bar
	if !m.cfg.UI.CompactMode {
		used++
	}
	used += len(m.renderSuggestions())

	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-used, 1)
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
	m.written = m.console.Transcript().Written()
}

func (m Model) renderHeader() string {
	title := m.theme.Header.Render("devconsole")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", m.theme.Hint.Render("help | man <command>"))
}

func (m Model) renderTranscript() string {
	lines := m.console.Transcript().Lines()
	out := make([]string, 0, len(lines))
	width := max(m.width, 1)
	for _, l := range lines {
		out = append(out, m.renderLine(l, width))
	}
	return strings.Join(out, "\n")
}

func (m Model) renderLine(l bus.Line, width int) string {
	text := l.Text
	if ind := styles.LevelIndicator(l.Level); ind != "" {
		text = ind + " " + text
	}
	if m.cfg.UI.ShowTimestamps {
		text = l.Time.Format("15:04:05") + " " + text
	}
	return m.theme.LineStyle(l.Level).Width(width).Render(text)
}

// renderSuggestions draws the suggestion stack, first suggestion nearest the
// input line. Nothing is drawn while the console is hidden.
func (m Model) renderSuggestions() []string {
	c := m.console.Completer()
	if !m.console.Active() || !c.Visible() {
		return nil
	}

	markerWidth := util.StringWidth(commands.SelectedMarker)
	budget := max(m.width-markerWidth, 1)

	rendered := c.Render()
	out := make([]string, len(rendered))
	for i, l := range rendered {
		marker := strings.Repeat(" ", markerWidth)
		emphasis := m.theme.SuggestionEmphasis
		if l.Selected {
			marker = m.theme.SuggestionMarker.Render(commands.SelectedMarker)
			emphasis = m.theme.SuggestionSelected
		}
		e := util.TruncateWidth(l.Emphasis, budget)
		rest := util.TruncateWidth(l.Rest, budget-util.StringWidth(e))
		out[i] = marker + emphasis.Render(e) + m.theme.SuggestionRest.Render(rest)
	}
	return out
}

func (m Model) renderStatusBar() string {
	flags := m.console.Bus().Flags()
	parts := []string{
		flagText("verbose", flags.Verbose),
		flagText("logCommands", flags.LogCommands),
		flagText("logToHost", flags.LogToHost),
	}
	if e := m.console.Macros(); e != nil {
		parts = append(parts, fmt.Sprintf("macros:%d", len(e.Macros())))
	} else {
		parts = append(parts, "macros:off")
	}

	if m.console.Active() {
		for _, b := range m.keyMap.ShortHelp() {
			h := b.Help()
			parts = append(parts, h.Key+" "+h.Desc)
		}
	} else {
		parts = append(parts, "C-c quit")
	}

	text := util.TruncateWidth(strings.Join(parts, " | "), max(m.width, 1))
	return m.theme.StatusBar.Width(max(m.width, 1)).Render(text)
}

func flagText(name string, on bool) string {
	if on {
		return name + ":on"
	}
	return name + ":off"
}
