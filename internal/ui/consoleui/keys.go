// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package consoleui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard bindings used while the console is shown.
type KeyMap struct {
	Accept    key.Binding
	CycleUp   key.Binding
	CycleDown key.Binding
	Submit    key.Binding
	HistPrev  key.Binding
	HistNext  key.Binding
	Clear     key.Binding
	Hide      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Accept: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "complete"),
		),
		// Ctrl+PgUp/PgDn arrive as different keys and are left alone.
		CycleUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "next suggestion"),
		),
		CycleDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "previous suggestion"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "submit"),
		),
		HistPrev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("Up", "previous line"),
		),
		HistNext: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("Down", "next line"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "clear transcript"),
		),
		Hide: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "hide console"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.CycleUp, k.CycleDown, k.Submit, k.Hide, k.Quit}
}
