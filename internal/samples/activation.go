// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package samples

import "github.com/jeranaias/devconsole/internal/bus"

// ActivationLogger prints a line whenever the console is shown or hidden.
type ActivationLogger struct {
	bus *bus.Bus
	id  string
}

// NewActivationLogger starts listening on b.
func NewActivationLogger(b *bus.Bus) *ActivationLogger {
	a := &ActivationLogger{bus: b}
	a.id = b.OnActivation("activation-logger", a.onActivation)
	return a
}

func (a *ActivationLogger) onActivation(active bool) {
	if active {
		a.bus.Log("Console activated!")
	} else {
		a.bus.Log("Console deactivated!")
	}
}

// Close stops listening.
func (a *ActivationLogger) Close() {
	a.bus.RemoveActivation(a.id)
}
