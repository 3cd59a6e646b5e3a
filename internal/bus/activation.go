// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bus

import "github.com/google/uuid"

// ActivationFunc is told when the console is shown (true) or hidden (false).
type ActivationFunc func(active bool)

type activationListener struct {
	id   string
	name string
	fn   ActivationFunc
}

// OnActivation registers fn for activation changes and returns an ID for
// RemoveActivation. Listeners run in registration order.
func (b *Bus) OnActivation(name string, fn ActivationFunc) string {
	id := uuid.NewString()
	b.listeners = append(b.listeners, activationListener{id: id, name: name, fn: fn})
	return id
}

// RemoveActivation unregisters an activation listener.
func (b *Bus) RemoveActivation(id string) bool {
	for i, l := range b.listeners {
		if l.id == id {
			listeners := make([]activationListener, 0, len(b.listeners)-1)
			listeners = append(listeners, b.listeners[:i]...)
			b.listeners = append(listeners, b.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// SetActive changes the activation state and notifies listeners. Setting
// the current state again is a no-op.
func (b *Bus) SetActive(active bool) {
	if b.active == active {
		return
	}
	b.active = active
	for _, l := range b.listeners {
		l.fn(active)
	}
}

// Active reports whether the console is currently shown.
func (b *Bus) Active() bool {
	return b.active
}
