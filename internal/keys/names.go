// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package keys

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors.
var (
	ErrEmptyName   = errors.New("empty key name")
	ErrUnknownKey  = errors.New("unknown key")
	ErrUnknownMod  = errors.New("unknown key modifier")
	ErrModOnlyName = errors.New("key name has modifiers but no key")
)

// namedKeys are the non-character keys, spelled the way the terminal
// reports them.
var namedKeys = map[string]bool{
	"space": true, "enter": true, "tab": true, "esc": true, "backspace": true,
	"delete": true, "insert": true, "home": true, "end": true,
	"pgup": true, "pgdown": true,
	"up": true, "down": true, "left": true, "right": true,
	"f1": true, "f2": true, "f3": true, "f4": true, "f5": true, "f6": true,
	"f7": true, "f8": true, "f9": true, "f10": true, "f11": true, "f12": true,
}

// aliases map other common spellings, including engine-style key codes
// found in older macro files, onto canonical names.
var aliases = map[string]string{
	" ":          "space",
	"spacebar":   "space",
	"return":     "enter",
	"cr":         "enter",
	"escape":     "esc",
	"bs":         "backspace",
	"del":        "delete",
	"ins":        "insert",
	"pageup":     "pgup",
	"pagedown":   "pgdown",
	"uparrow":    "up",
	"downarrow":  "down",
	"leftarrow":  "left",
	"rightarrow": "right",
	"backquote":  "`",
	"tilde":      "~",
	"minus":      "-",
	"equals":     "=",
	"comma":      ",",
	"period":     ".",
	"slash":      "/",
	"backslash":  "\\",
	"semicolon":  ";",
	"quote":      "'",
}

// modifierOrder is the canonical modifier order.
var modifierOrder = []string{"alt", "ctrl", "shift"}

// Normalize returns the canonical form of a key name, e.g. "Ctrl+A" →
// "ctrl+a", "Alpha1" → "1", "PageUp" → "pgup".
func Normalize(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	if name == " " || name == "+" {
		return canonicalKey(name)
	}

	parts := strings.Split(strings.TrimSpace(name), "+")
	keyPart := parts[len(parts)-1]
	if keyPart == "" {
		return "", fmt.Errorf("%w: %q", ErrModOnlyName, name)
	}

	mods := map[string]bool{}
	for _, m := range parts[:len(parts)-1] {
		m = strings.ToLower(strings.TrimSpace(m))
		switch m {
		case "alt", "ctrl", "shift":
			mods[m] = true
		case "control":
			mods["ctrl"] = true
		case "option", "meta":
			mods["alt"] = true
		default:
			return "", fmt.Errorf("%w: %q in %q", ErrUnknownMod, m, name)
		}
	}

	key, err := canonicalKey(keyPart)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, m := range modifierOrder {
		if mods[m] {
			b.WriteString(m)
			b.WriteByte('+')
		}
	}
	b.WriteString(key)
	return b.String(), nil
}

func canonicalKey(k string) (string, error) {
	lower := strings.ToLower(k)
	if alias, ok := aliases[lower]; ok {
		return alias, nil
	}
	if namedKeys[lower] {
		return lower, nil
	}
	// Engine-style digit names: Alpha1, Keypad1.
	for _, prefix := range []string{"alpha", "keypad"} {
		if rest, ok := strings.CutPrefix(lower, prefix); ok && len(rest) == 1 && rest[0] >= '0' && rest[0] <= '9' {
			return rest, nil
		}
	}
	if len([]rune(k)) == 1 {
		r := []rune(lower)[0]
		if r > ' ' && r < 0x7f {
			return string(r), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, k)
}

// Valid reports whether name denotes a key the console can bind.
func Valid(name string) bool {
	_, err := Normalize(name)
	return err == nil
}
