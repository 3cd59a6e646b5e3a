// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package macro

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jeranaias/devconsole/internal/bus"
	"github.com/jeranaias/devconsole/internal/commands"
	"github.com/jeranaias/devconsole/internal/keys"
)

// ErrMacrosDisabled is returned when a listing fails validation. No macro
// from it is registered.
var ErrMacrosDisabled = errors.New("macros disabled")

// Engine serves a validated listing on a bus.
type Engine struct {
	bus     *bus.Bus
	listing *Listing
	byName  map[string]int

	subID        string
	activationID string

	// suspended while the console is shown
	suspended bool
	closed    bool
}

// NewEngine validates listing and subscribes an engine for it to b.
// Warnings and validation errors are printed on the console. If validation
// fails the returned error wraps ErrMacrosDisabled and nothing is
// subscribed.
func NewEngine(b *bus.Bus, listing *Listing, keyValid KeyValidator) (*Engine, error) {
	valid, warnings, err := Validate(listing, keyValid)
	for _, w := range warnings {
		b.Warn("=> " + w.Message)
	}
	if err != nil {
		var verrs ValidationErrors
		if errors.As(err, &verrs) {
			for _, e := range verrs {
				b.Error("=> " + e.Message)
			}
		}
		b.Error("Failed to validate macros!\nMacros are unavailable.")
		return nil, fmt.Errorf("%w: %w", ErrMacrosDisabled, err)
	}

	e := &Engine{
		bus:       b,
		listing:   valid,
		byName:    make(map[string]int, len(valid.Macros)),
		suspended: b.Active(),
	}
	for i, def := range valid.Macros {
		e.byName[def.CommandName] = i
	}

	id, err := b.Subscribe(e)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe macros: %w", err)
	}
	e.subID = id
	e.activationID = b.OnActivation("macros", func(active bool) {
		e.suspended = active
	})
	return e, nil
}

// String names the engine in subscriber listings.
func (e *Engine) String() string { return "macros" }

// Commands implements bus.Subscriber.
func (e *Engine) Commands() []commands.CommandDescriptor {
	return Descriptors(e.listing)
}

// HandleCommand expands and posts the macro named by cmd. Commands outside
// the macro namespace are ignored. A missing argument is printed as an error
// and aborts only this expansion. Reaching the dispatch depth limit aborts
// the expansion and every macro it is nested in.
func (e *Engine) HandleCommand(cmd commands.Command) error {
	name, ok := strings.CutPrefix(cmd.Msg, Prefix)
	if !ok || e.closed {
		return nil
	}
	i, ok := e.byName[name]
	if !ok {
		return nil
	}

	lines, err := Expand(e.listing.Macros[i], cmd.Args)
	if err != nil {
		e.bus.Error(err.Error())
		return nil
	}
	return e.post(lines)
}

// Tick fires the first macro whose trigger key is pressed in state. Nothing
// fires while the console is shown. It reports whether a macro fired.
func (e *Engine) Tick(state keys.State) bool {
	if e.closed || e.suspended || state == nil {
		return false
	}
	for _, def := range e.listing.Macros {
		if def.TriggerKey == "" || !state.Pressed(def.TriggerKey) {
			continue
		}
		// The depth error was printed where the limit was hit.
		_ = e.post(ExpandDefaults(def))
		return true
	}
	return false
}

// post sends each expanded line through the bus. Handler failures were
// already printed by the nested dispatch and the remaining lines still run.
// Hitting the depth limit stops here and is returned so enclosing
// expansions stop too.
func (e *Engine) post(lines []string) error {
	for _, line := range lines {
		if err := e.bus.Post(line); errors.Is(err, bus.ErrDispatchDepth) {
			return err
		}
	}
	return nil
}

// Macros returns a copy of the validated macros.
func (e *Engine) Macros() []Definition {
	out := make([]Definition, len(e.listing.Macros))
	for i, d := range e.listing.Macros {
		out[i] = d.clone()
	}
	return out
}

// Suspended reports whether key triggers are currently ignored.
func (e *Engine) Suspended() bool {
	return e.suspended
}

// Close unsubscribes the engine. Its descriptors stay registered.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.bus.UnsubscribeID(e.subID)
	e.bus.RemoveActivation(e.activationID)
}
