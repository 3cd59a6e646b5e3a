// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

// DefaultHistorySize bounds the input history.
const DefaultHistorySize = 100

// History remembers submitted lines for the input field. It lives in memory
// only.
type History struct {
	entries []string
	max     int

	// pos indexes entries while browsing; len(entries) means "not browsing".
	pos   int
	draft string
}

// NewHistory creates a history keeping at most max entries.
func NewHistory(max int) *History {
	if max <= 0 {
		max = DefaultHistorySize
	}
	return &History{max: max}
}

// Add records a submitted line and stops browsing. Empty lines and repeats
// of the previous line are skipped.
func (h *History) Add(line string) {
	if line != "" && (len(h.entries) == 0 || h.entries[len(h.entries)-1] != line) {
		h.entries = append(h.entries, line)
		if len(h.entries) > h.max {
			h.entries = h.entries[len(h.entries)-h.max:]
		}
	}
	h.pos = len(h.entries)
	h.draft = ""
}

// Prev moves to the previous entry. current is what the user has typed; it
// is restored once Next walks past the newest entry.
func (h *History) Prev(current string) (string, bool) {
	if h.pos == 0 || len(h.entries) == 0 {
		return current, false
	}
	if h.pos == len(h.entries) {
		h.draft = current
	}
	h.pos--
	return h.entries[h.pos], true
}

// Next moves to the next entry, or back to the draft.
func (h *History) Next() (string, bool) {
	if h.pos >= len(h.entries) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.entries) {
		return h.draft, true
	}
	return h.entries[h.pos], true
}

// Entries returns the history, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}
