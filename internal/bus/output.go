// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bus

import "time"

// Level is the severity of a console line.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarn
	LevelError
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Line is one entry written to the console output.
type Line struct {
	Level Level
	Text  string
	Time  time.Time
}

// Output receives every line the console prints. Hosts render it; the bus
// never assumes anything about layout.
type Output interface {
	WriteLine(Line)
}

// OutputFunc adapts a function to Output.
type OutputFunc func(Line)

// WriteLine implements Output.
func (f OutputFunc) WriteLine(l Line) { f(l) }

// discard drops every line.
type discard struct{}

func (discard) WriteLine(Line) {}

// =============================================================================
// PRINTING
// =============================================================================

// Log prints an info line and echoes it to the host log if enabled.
func (b *Bus) Log(text string) {
	b.emit(LevelInfo, text, b.logToHost)
}

// Verbose prints only while console.verbose is on.
func (b *Bus) Verbose(text string) {
	if b.verbose {
		b.emit(LevelVerbose, text, b.logToHost)
	}
}

// Warn prints a warning line.
func (b *Bus) Warn(text string) {
	b.emit(LevelWarn, text, b.logToHost)
}

// Error prints an error line. Errors always reach the host log.
func (b *Bus) Error(text string) {
	b.emit(LevelError, text, true)
}

// Print writes to the console only, never to the host log. Used for bulk
// listings that would flood it.
func (b *Bus) Print(text string) {
	b.emit(LevelInfo, text, false)
}

func (b *Bus) emit(level Level, text string, forward bool) {
	b.out.WriteLine(Line{Level: level, Text: text, Time: b.now()})
	if !forward {
		return
	}
	switch level {
	case LevelWarn:
		b.log.Warn(text)
	case LevelError:
		b.log.Error(text)
	case LevelVerbose:
		b.log.Debug(text)
	default:
		b.log.Info(text)
	}
}
