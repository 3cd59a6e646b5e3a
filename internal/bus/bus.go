// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bus

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/devconsole/internal/commands"
	"github.com/jeranaias/devconsole/internal/logging"
)

// DefaultMaxDepth bounds nested posts (a handler posting from inside a
// dispatch). Self-referencing macros hit this instead of the stack limit.
const DefaultMaxDepth = 64

// =============================================================================
// SUBSCRIBER
// =============================================================================

// Subscriber is anything that listens on the bus. Every subscriber sees
// every command and decides for itself whether it is relevant, usually by
// checking cmd.Msg against names it owns.
type Subscriber interface {
	// HandleCommand is called for every posted command
	HandleCommand(cmd commands.Command) error

	// Commands describes the commands this subscriber handles
	Commands() []commands.CommandDescriptor
}

// SubscriberInfo identifies a subscriber in listings.
type SubscriberInfo struct {
	ID   string
	Name string
}

type subscription struct {
	id  string
	sub Subscriber
}

// SubscriberName returns a display name: the subscriber's String method if
// it has one, its type name otherwise.
func SubscriberName(sub Subscriber) string {
	if s, ok := sub.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", sub)
}

// =============================================================================
// BUS
// =============================================================================

// Options configures a Bus.
type Options struct {
	// Verbose gates LevelVerbose output
	Verbose bool

	// LogCommands echoes every dispatched command
	LogCommands bool

	// LogToHost forwards info and warning lines to the host log
	LogToHost bool

	// MaxDepth bounds nested dispatch; 0 means DefaultMaxDepth
	MaxDepth int

	// IsolateFailures keeps dispatching after a handler fails. When false
	// the first failure aborts the rest of the pass.
	IsolateFailures bool

	// Output receives console lines; nil discards them
	Output Output

	// Logger is the host log; nil uses logging.L()
	Logger *logging.Logger
}

// DefaultOptions returns the options the console starts with.
func DefaultOptions() Options {
	return Options{
		Verbose:         true,
		LogCommands:     true,
		LogToHost:       true,
		MaxDepth:        DefaultMaxDepth,
		IsolateFailures: true,
	}
}

// Bus is the ordered broadcast dispatcher. Posting a line parses it and hands
// the command to every subscriber, in subscription order, synchronously.
//
// Bus is single-threaded: every method must be called from the goroutine that
// owns the console.
type Bus struct {
	registry *commands.Registry
	out      Output
	log      *logging.Logger
	now      func() time.Time

	// Flags, changed only by the built-in console.* commands
	verbose     bool
	logCommands bool
	logToHost   bool

	maxDepth int
	isolate  bool

	subs  []subscription
	depth int

	listeners []activationListener
	active    bool
}

// New creates a bus over registry and subscribes the built-in console
// commands as the first subscriber.
func New(registry *commands.Registry, opts Options) *Bus {
	if opts.Output == nil {
		opts.Output = discard{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.L()
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	b := &Bus{
		registry:    registry,
		out:         opts.Output,
		log:         opts.Logger,
		now:         time.Now,
		verbose:     opts.Verbose,
		logCommands: opts.LogCommands,
		logToHost:   opts.LogToHost,
		maxDepth:    opts.MaxDepth,
		isolate:     opts.IsolateFailures,
	}
	_, _ = b.Subscribe(&builtins{bus: b})
	return b
}

// Registry returns the registry descriptors are published to.
func (b *Bus) Registry() *commands.Registry {
	return b.registry
}

// Subscribe appends sub to the dispatch list and registers its descriptors.
// It returns an ID that identifies the subscription in listings.
func (b *Bus) Subscribe(sub Subscriber) (string, error) {
	if isNil(sub) {
		return "", ErrNilSubscriber
	}
	id := uuid.NewString()
	b.subs = append(b.subs, subscription{id: id, sub: sub})
	b.registry.Register(sub.Commands()...)
	b.Verbose("Subscribed " + SubscriberName(sub))
	return id, nil
}

// isNil also catches a nil pointer stored in a non-nil interface.
func isNil(sub Subscriber) bool {
	if sub == nil {
		return true
	}
	v := reflect.ValueOf(sub)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Unsubscribe removes the first subscription of sub. Its descriptors stay in
// the registry, so help and suggestions keep listing them.
func (b *Bus) Unsubscribe(sub Subscriber) bool {
	for i, s := range b.subs {
		if s.sub == sub {
			b.removeAt(i)
			return true
		}
	}
	return false
}

// UnsubscribeID removes the subscription with the given ID.
func (b *Bus) UnsubscribeID(id string) bool {
	for i, s := range b.subs {
		if s.id == id {
			b.removeAt(i)
			return true
		}
	}
	return false
}

func (b *Bus) removeAt(i int) {
	name := SubscriberName(b.subs[i].sub)
	// Build a new slice so an in-flight snapshot keeps its view.
	subs := make([]subscription, 0, len(b.subs)-1)
	subs = append(subs, b.subs[:i]...)
	b.subs = append(subs, b.subs[i+1:]...)
	b.Verbose("Unsubscribed " + name)
}

// Subscribers lists current subscriptions in dispatch order.
func (b *Bus) Subscribers() []SubscriberInfo {
	infos := make([]SubscriberInfo, len(b.subs))
	for i, s := range b.subs {
		infos[i] = SubscriberInfo{ID: s.id, Name: SubscriberName(s.sub)}
	}
	return infos
}

// Post echoes raw to the console, parses it and dispatches the result.
func (b *Bus) Post(raw string) error {
	b.Log(raw)
	return b.PostCommand(commands.Parse(raw))
}

// PostCommand dispatches cmd to every subscriber registered when the call
// starts. Subscribing or unsubscribing from inside a handler takes effect on
// the next dispatch.
//
// Handlers may post again; nested dispatch runs to completion before the
// outer one continues, up to the configured depth. Handler errors and panics
// are reported as error lines and returned; panics never escape.
func (b *Bus) PostCommand(cmd commands.Command) error {
	if b.depth >= b.maxDepth {
		b.Error(fmt.Sprintf("Dispatch depth limit (%d) reached, dropping %s", b.maxDepth, cmd.Msg))
		return fmt.Errorf("%w: %s", ErrDispatchDepth, cmd.Msg)
	}
	b.depth++
	defer func() { b.depth-- }()

	if b.logCommands {
		b.Log(cmd.String())
	}

	snapshot := b.subs
	var errs []error
	for _, s := range snapshot {
		err := b.deliver(s.sub, cmd)
		if err == nil {
			continue
		}
		// Depth errors were reported where the limit was hit.
		if !errors.Is(err, ErrDispatchDepth) {
			b.Error(err.Error())
		}
		if !b.isolate {
			return err
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// deliver calls one handler, turning a panic into a HandlerError.
func (b *Bus) deliver(sub Subscriber, cmd commands.Command) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &HandlerError{
				Subscriber: SubscriberName(sub),
				Command:    cmd.Msg,
				Panicked:   true,
				Err:        fmt.Errorf("%v", r),
			}
		}
	}()

	if herr := sub.HandleCommand(cmd); herr != nil {
		return &HandlerError{Subscriber: SubscriberName(sub), Command: cmd.Msg, Err: herr}
	}
	return nil
}

// =============================================================================
// FLAGS
// =============================================================================

// Flags is a snapshot of the console flags.
type Flags struct {
	Verbose     bool
	LogCommands bool
	LogToHost   bool
}

// Flags returns the current flag values.
func (b *Bus) Flags() Flags {
	return Flags{Verbose: b.verbose, LogCommands: b.logCommands, LogToHost: b.logToHost}
}
