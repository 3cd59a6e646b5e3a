// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package consoleui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/devconsole/internal/config"
	"github.com/jeranaias/devconsole/internal/console"
	"github.com/jeranaias/devconsole/internal/keys"
	"github.com/jeranaias/devconsole/internal/macro"
	"github.com/jeranaias/devconsole/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// TickMsg drives the per-frame macro poll.
type TickMsg time.Time

// MacrosChangedMsg is sent when the macro listing file was edited.
type MacrosChangedMsg struct {
	Path string
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the console.
type Model struct {
	console *console.Console
	cfg     *config.Config
	theme   *styles.Theme
	keyMap  KeyMap

	// toggleKey is the canonical name of the show/hide key
	toggleKey string

	input    textinput.Model
	viewport viewport.Model
	history  *console.History

	// pressed collects keys seen since the last tick while hidden
	pressed *keys.Set

	watcher *macro.Watcher
	tick    time.Duration

	width  int
	height int

	// written is the transcript count last rendered
	written uint64
}

// Option configures a Model.
type Option func(*Model)

// WithWatcher reloads macros whenever w reports a change.
func WithWatcher(w *macro.Watcher) Option {
	return func(m *Model) {
		m.watcher = w
	}
}

// WithTheme overrides the detected theme.
func WithTheme(t *styles.Theme) Option {
	return func(m *Model) {
		m.theme = t
	}
}

// New creates a console model. cfg supplies the toggle key and UI settings.
func New(c *console.Console, cfg *config.Config, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a command, Tab to complete..."
	ti.CharLimit = 1024

	toggle, err := keys.Normalize(cfg.Console.ToggleKey)
	if err != nil {
		toggle = "`"
	}

	m := Model{
		console:   c,
		cfg:       cfg,
		keyMap:    DefaultKeyMap(),
		toggleKey: toggle,
		input:     ti,
		viewport:  viewport.New(80, 20),
		history:   console.NewHistory(console.DefaultHistorySize),
		pressed:   &keys.Set{},
		tick:      time.Duration(cfg.UI.TickMillis) * time.Millisecond,
		width:     80,
		height:    24,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.theme == nil {
		m.theme = styles.NewTheme()
	}
	if m.tick <= 0 {
		m.tick = 50 * time.Millisecond
	}
	m.input.PromptStyle = m.theme.Prompt
	m.input.TextStyle = m.theme.InputText
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tickCmd()}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher.Changes()))
	}
	return tea.Batch(cmds...)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForChange blocks on the watcher channel. It returns nil once the
// watcher is closed, which ends the loop.
func waitForChange(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		path, ok := <-ch
		if !ok {
			return nil
		}
		return MacrosChangedMsg{Path: path}
	}
}

// Input returns the current input line.
func (m Model) Input() string {
	return m.input.Value()
}

// Run starts the TUI and blocks until the user quits.
func Run(c *console.Console, cfg *config.Config, opts ...Option) error {
	p := tea.NewProgram(New(c, cfg, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
