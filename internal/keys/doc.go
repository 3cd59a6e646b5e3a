// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package keys names the keys macros can be bound to and tracks which were
// pressed during a tick.
//
// Names follow the terminal's spelling ("a", "f5", "pgup", "ctrl+k").
// Normalize also accepts common alternatives such as "PageUp", "Escape" or
// "Alpha1" so older macro files keep working.
package keys
