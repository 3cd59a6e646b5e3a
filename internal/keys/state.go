// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package keys

// State answers "was this key pressed this tick". Names are canonical (see
// Normalize).
type State interface {
	Pressed(name string) bool
}

// Set is a State built from the key presses seen since the last tick.
// The zero value is empty and ready to use.
type Set struct {
	pressed map[string]bool
}

// NewSet returns a set containing the given keys. Names that don't
// normalize are ignored.
func NewSet(names ...string) *Set {
	s := &Set{}
	for _, n := range names {
		s.Press(n)
	}
	return s
}

// Press records a key press. It returns false if name isn't a valid key.
func (s *Set) Press(name string) bool {
	canonical, err := Normalize(name)
	if err != nil {
		return false
	}
	if s.pressed == nil {
		s.pressed = make(map[string]bool)
	}
	s.pressed[canonical] = true
	return true
}

// Pressed implements State.
func (s *Set) Pressed(name string) bool {
	return s.pressed[name]
}

// Len returns the number of distinct keys pressed.
func (s *Set) Len() int {
	return len(s.pressed)
}

// Clear forgets every press. Hosts call it after each tick.
func (s *Set) Clear() {
	clear(s.pressed)
}
