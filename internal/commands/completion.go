// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

// MaxSuggestions is how many suggestions the completer keeps at once.
const MaxSuggestions = 10

// manVerb is the command whose first argument is itself a command name.
const manVerb = "man"

// =============================================================================
// COMPLETER
// =============================================================================

// Completer keeps a bounded, cursor-addressable list of suggestions for the
// line being typed. It reads descriptors from the registry on every Update,
// so commands registered later show up without any extra wiring.
type Completer struct {
	registry *Registry

	// Selected index, always within [0, maxCursor]
	cursor    int
	maxCursor int

	suggestions []CommandDescriptor

	// manMode is set while completing the argument of "man"
	manMode bool

	// partial is what the suggestions were computed against
	partial Command
}

// NewCompleter creates a completer over the given registry.
func NewCompleter(registry *Registry) *Completer {
	return &Completer{registry: registry}
}

// Update recomputes suggestions for a partially typed command. It returns
// false when the input is empty and the suggestion list should be hidden.
func (c *Completer) Update(partial Command) bool {
	c.partial = partial
	c.manMode = false

	if partial.Msg == "" {
		c.suggestions = nil
		c.maxCursor = 0
		c.cursor = 0
		return false
	}

	searchText := partial.Msg
	for i, r := range searchText {
		if r == ' ' {
			searchText = searchText[:i]
			break
		}
	}

	if searchText == manVerb && len(partial.Args) >= 1 {
		searchText = partial.Args[0]
		c.manMode = true
	}

	c.suggestions = c.suggestions[:0]
	for _, d := range c.registry.Prefixed(searchText) {
		// Skip commands the user has already given too many arguments.
		if !c.manMode && len(partial.Args) > len(d.Args) {
			continue
		}
		c.suggestions = append(c.suggestions, d)
		if len(c.suggestions) == MaxSuggestions {
			break
		}
	}

	c.maxCursor = max(len(c.suggestions)-1, 0)
	c.cursor = min(max(c.cursor, 0), c.maxCursor)

	if c.manMode {
		c.partial = Command{Msg: searchText}
	}
	return true
}

// Cycle moves the cursor by delta, clamped to the list. It never wraps.
func (c *Completer) Cycle(delta int) {
	c.cursor = min(max(c.cursor+delta, 0), c.maxCursor)
}

// ResetCursor moves the cursor back to the first suggestion.
func (c *Completer) ResetCursor() {
	c.cursor = 0
}

// Selection returns the text to put back on the input line when the user
// accepts the current suggestion, or "" if there is nothing to accept.
func (c *Completer) Selection() string {
	if len(c.suggestions) == 0 || c.cursor < 0 {
		return ""
	}
	msg := c.suggestions[min(c.cursor, len(c.suggestions)-1)].Msg
	if c.manMode {
		return manVerb + " " + msg
	}
	return msg
}

// Suggestions returns the current suggestions, ascending by name.
func (c *Completer) Suggestions() []CommandDescriptor {
	return append([]CommandDescriptor(nil), c.suggestions...)
}

// Cursor returns the selected index.
func (c *Completer) Cursor() int { return c.cursor }

// MaxCursor returns the largest valid cursor value.
func (c *Completer) MaxCursor() int { return c.maxCursor }

// ManMode reports whether the completer is matching the argument of "man".
func (c *Completer) ManMode() bool { return c.manMode }

// Visible reports whether there is anything to show.
func (c *Completer) Visible() bool { return c.partial.Msg != "" && len(c.suggestions) > 0 }
