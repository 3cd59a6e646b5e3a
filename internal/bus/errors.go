// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bus

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSubscriber is returned when subscribing a nil subscriber.
	ErrNilSubscriber = errors.New("bus: nil subscriber")

	// ErrDispatchDepth is returned when nested posts exceed the depth limit.
	ErrDispatchDepth = errors.New("bus: dispatch depth limit reached")
)

// HandlerError wraps a failure from one subscriber's handler.
type HandlerError struct {
	// Subscriber is the display name of the failing subscriber
	Subscriber string

	// Command is the command name being dispatched
	Command string

	// Panicked is true when the handler panicked rather than returning an error
	Panicked bool

	Err error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	if e.Panicked {
		return fmt.Sprintf("%s panicked handling %s: %v", e.Subscriber, e.Command, e.Err)
	}
	return fmt.Sprintf("%s failed handling %s: %v", e.Subscriber, e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}
