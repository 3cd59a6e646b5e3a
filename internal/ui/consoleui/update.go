// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package consoleui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/devconsole/internal/keys"
	"github.com/jeranaias/devconsole/internal/logging"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refresh()
		return m, nil

	case TickMsg:
		m.console.Tick(m.pressed)
		m.pressed.Clear()
		if m.console.Transcript().Written() != m.written {
			m.refresh()
		}
		return m, m.tickCmd()

	case MacrosChangedMsg:
		if err := m.console.ReloadMacros(); err != nil {
			logging.L().Warnw("macro reload failed", "path", msg.Path, "error", err)
		}
		m.refresh()
		if m.watcher == nil {
			return m, nil
		}
		return m, waitForChange(m.watcher.Changes())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}

	if m.isToggle(msg) {
		return m.setActive(!m.console.Active())
	}

	if !m.console.Active() {
		// Hidden: the key is only of interest to macro triggers.
		m.pressed.Press(msg.String())
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Hide):
		return m.setActive(false)

	case key.Matches(msg, m.keyMap.Accept):
		if sel, ok := m.console.Accept(m.input.Value()); ok {
			m.setInput(sel)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.CycleUp):
		m.console.Cycle(1)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keyMap.CycleDown):
		m.console.Cycle(-1)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		line := m.input.Value()
		m.history.Add(line)
		m.input.SetValue("")
		// Errors were already printed to the transcript.
		_ = m.console.Submit(line)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keyMap.HistPrev):
		if line, ok := m.history.Prev(m.input.Value()); ok {
			m.setInput(line)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.HistNext):
		if line, ok := m.history.Next(); ok {
			m.setInput(line)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Clear):
		m.console.Transcript().Clear()
		m.refresh()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.console.InputChanged(m.input.Value())
		m.refresh()
	}
	return m, cmd
}

// isToggle reports whether msg is the configured show/hide key.
func (m Model) isToggle(msg tea.KeyMsg) bool {
	name, err := keys.Normalize(msg.String())
	return err == nil && name == m.toggleKey
}

func (m Model) setActive(active bool) (tea.Model, tea.Cmd) {
	m.console.SetActive(active)
	m.pressed.Clear()

	var cmd tea.Cmd
	if active {
		cmd = m.input.Focus()
	} else {
		m.input.SetValue("")
		m.input.Blur()
		m.console.InputChanged("")
	}
	m.refresh()
	return m, cmd
}

// setInput replaces the input line and refreshes suggestions.
func (m *Model) setInput(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
	m.console.InputChanged(s)
	m.refresh()
}
