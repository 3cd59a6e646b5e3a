// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import "github.com/jeranaias/devconsole/internal/bus"

// DefaultMaxEntries is the transcript size when none is configured.
const DefaultMaxEntries = 128

// Transcript is a ring buffer of console lines. It implements bus.Output.
type Transcript struct {
	lines []bus.Line
	start int
	count int

	// written counts every line ever written, so hosts can tell when to
	// redraw.
	written uint64
}

// NewTranscript creates a transcript holding at most max lines.
func NewTranscript(max int) *Transcript {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &Transcript{lines: make([]bus.Line, max)}
}

// WriteLine implements bus.Output.
func (t *Transcript) WriteLine(l bus.Line) {
	t.written++
	if t.count < len(t.lines) {
		t.lines[(t.start+t.count)%len(t.lines)] = l
		t.count++
		return
	}
	// Full: overwrite the oldest.
	t.lines[t.start] = l
	t.start = (t.start + 1) % len(t.lines)
}

// Lines returns the held lines, oldest first.
func (t *Transcript) Lines() []bus.Line {
	out := make([]bus.Line, t.count)
	for i := range out {
		out[i] = t.lines[(t.start+i)%len(t.lines)]
	}
	return out
}

// Len returns the number of lines held.
func (t *Transcript) Len() int { return t.count }

// Cap returns the maximum number of lines held.
func (t *Transcript) Cap() int { return len(t.lines) }

// Written returns the number of lines written since creation.
func (t *Transcript) Written() uint64 { return t.written }

// Clear drops every line.
func (t *Transcript) Clear() {
	clear(t.lines)
	t.start = 0
	t.count = 0
}
