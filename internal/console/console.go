// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jeranaias/devconsole/internal/bus"
	"github.com/jeranaias/devconsole/internal/commands"
	"github.com/jeranaias/devconsole/internal/config"
	"github.com/jeranaias/devconsole/internal/keys"
	"github.com/jeranaias/devconsole/internal/logging"
	"github.com/jeranaias/devconsole/internal/macro"
)

// ErrNoMacroListing is returned by ReloadMacros before any listing was
// loaded, and by LoadMacros when the file does not exist.
var ErrNoMacroListing = errors.New("no macro listing found")

// =============================================================================
// OPTIONS
// =============================================================================

// Option configures a Console.
type Option func(*Console)

// WithConfig applies the console section of cfg.
func WithConfig(cfg *config.Config) Option {
	return func(c *Console) {
		if cfg != nil {
			c.cfg = cfg
		}
	}
}

// WithOutput sends console lines to out as well as the transcript.
func WithOutput(out bus.Output) Option {
	return func(c *Console) {
		c.extra = out
	}
}

// WithLogger sets the host log.
func WithLogger(l *logging.Logger) Option {
	return func(c *Console) {
		c.log = l
	}
}

// WithKeyValidator sets how macro trigger keys are checked.
func WithKeyValidator(v macro.KeyValidator) Option {
	return func(c *Console) {
		c.keyValid = v
	}
}

// =============================================================================
// CONSOLE
// =============================================================================

// Console is the context object hosts drive. It is single-threaded.
type Console struct {
	cfg      *config.Config
	extra    bus.Output
	log      *logging.Logger
	keyValid macro.KeyValidator

	registry   *commands.Registry
	bus        *bus.Bus
	completer  *commands.Completer
	transcript *Transcript

	macros    *macro.Engine
	macroPath string
}

// New creates a console with the built-in commands subscribed.
func New(opts ...Option) *Console {
	c := &Console{
		cfg:      config.Default(),
		log:      logging.L(),
		keyValid: keys.Valid,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.transcript = NewTranscript(c.cfg.Console.MaxEntries)
	c.registry = commands.NewRegistry()
	c.completer = commands.NewCompleter(c.registry)

	var out bus.Output = c.transcript
	if c.extra != nil {
		extra := c.extra
		out = bus.OutputFunc(func(l bus.Line) {
			c.transcript.WriteLine(l)
			extra.WriteLine(l)
		})
	}

	c.bus = bus.New(c.registry, bus.Options{
		Verbose:         c.cfg.Console.Verbose,
		LogCommands:     c.cfg.Console.LogCommands,
		LogToHost:       c.cfg.Console.LogToHost,
		MaxDepth:        c.cfg.Console.MaxDispatchDepth,
		IsolateFailures: c.cfg.Console.IsolateFailures,
		Output:          out,
		Logger:          c.log,
	})
	return c
}

// Bus returns the command bus.
func (c *Console) Bus() *bus.Bus { return c.bus }

// Registry returns the descriptor registry.
func (c *Console) Registry() *commands.Registry { return c.registry }

// Completer returns the autocomplete engine.
func (c *Console) Completer() *commands.Completer { return c.completer }

// Transcript returns the output buffer.
func (c *Console) Transcript() *Transcript { return c.transcript }

// Subscribe adds sub to the bus.
func (c *Console) Subscribe(sub bus.Subscriber) (string, error) {
	return c.bus.Subscribe(sub)
}

// =============================================================================
// INPUT
// =============================================================================

// Submit posts a line typed by the user. Blank lines are ignored. The
// suggestion list is cleared either way.
func (c *Console) Submit(line string) error {
	c.completer.Update(commands.Command{})
	c.completer.ResetCursor()
	if strings.TrimSpace(line) == "" {
		return nil
	}
	return c.bus.Post(line)
}

// InputChanged refreshes suggestions for the current input. It reports
// whether the suggestion list should be shown.
func (c *Console) InputChanged(text string) bool {
	return c.completer.Update(commands.Parse(text))
}

// Accept returns the selected suggestion if it is longer than current, the
// way Tab completes. Otherwise current is returned unchanged.
func (c *Console) Accept(current string) (string, bool) {
	sel := c.completer.Selection()
	if utf8.RuneCountInString(sel) > utf8.RuneCountInString(current) {
		return sel, true
	}
	return current, false
}

// Cycle moves the suggestion cursor.
func (c *Console) Cycle(delta int) {
	c.completer.Cycle(delta)
}

// =============================================================================
// ACTIVATION
// =============================================================================

// SetActive shows or hides the console. Showing it resets the suggestion
// cursor.
func (c *Console) SetActive(active bool) {
	if active {
		c.completer.ResetCursor()
	}
	c.bus.SetActive(active)
}

// Toggle flips the activation state and returns the new one.
func (c *Console) Toggle() bool {
	c.SetActive(!c.bus.Active())
	return c.bus.Active()
}

// Active reports whether the console is shown.
func (c *Console) Active() bool {
	return c.bus.Active()
}

// Tick fires key-bound macros for the keys pressed since the last tick.
func (c *Console) Tick(state keys.State) bool {
	if c.macros == nil {
		return false
	}
	return c.macros.Tick(state)
}

// =============================================================================
// MACROS
// =============================================================================

// LoadMacros loads a listing file and replaces the current macro engine.
// A file that can't be read or decoded leaves the current engine alone; a
// listing that fails validation disables macros until the next load.
func (c *Console) LoadMacros(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.bus.Warn("No macro listing found")
			return fmt.Errorf("%w: %s", ErrNoMacroListing, path)
		}
		return err
	}
	c.macroPath = path

	listing, err := macro.LoadFile(path)
	if err != nil {
		c.bus.Error(err.Error())
		return err
	}

	engine, err := c.swapMacros(listing)
	if err != nil {
		return err
	}
	c.log.Infow("macros loaded", "path", path, "count", len(engine.Macros()))
	c.bus.Log(fmt.Sprintf("Loaded %s!", filepath.Base(path)))
	return nil
}

// LoadListing installs an already decoded listing.
func (c *Console) LoadListing(listing *macro.Listing) error {
	_, err := c.swapMacros(listing)
	return err
}

func (c *Console) swapMacros(listing *macro.Listing) (*macro.Engine, error) {
	old := c.macros
	if old != nil {
		old.Close()
	}
	engine, err := macro.NewEngine(c.bus, listing, c.keyValid)
	if err != nil {
		// Fail closed: a bad listing disables macros entirely.
		c.macros = nil
		return nil, err
	}
	c.macros = engine
	return engine, nil
}

// ReloadMacros loads the last listing file again.
func (c *Console) ReloadMacros() error {
	if c.macroPath == "" {
		return ErrNoMacroListing
	}
	return c.LoadMacros(c.macroPath)
}

// MacroPath returns the listing file last loaded, even if it was rejected,
// so a fixed file can be reloaded.
func (c *Console) MacroPath() string { return c.macroPath }

// Macros returns the macro engine, or nil when macros are unavailable.
func (c *Console) Macros() *macro.Engine { return c.macros }

// Close releases the macro engine.
func (c *Console) Close() {
	if c.macros != nil {
		c.macros.Close()
		c.macros = nil
	}
}
