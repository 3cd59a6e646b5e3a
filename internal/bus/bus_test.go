// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bus

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jeranaias/devconsole/internal/commands"
	"github.com/jeranaias/devconsole/internal/logging"
)

// =============================================================================
// FAKES
// =============================================================================

// recorder appends every line written to the console.
type recorder struct {
	lines []Line
}

func (r *recorder) WriteLine(l Line) { r.lines = append(r.lines, l) }

func (r *recorder) texts() []string {
	out := make([]string, len(r.lines))
	for i, l := range r.lines {
		out[i] = l.Text
	}
	return out
}

func (r *recorder) contains(level Level, substr string) bool {
	for _, l := range r.lines {
		if l.Level == level && strings.Contains(l.Text, substr) {
			return true
		}
	}
	return false
}

// listener is a subscriber that records what it saw and optionally reacts.
type listener struct {
	name  string
	descs []commands.CommandDescriptor
	seen  []string
	onCmd func(cmd commands.Command) error
}

func (l *listener) String() string { return l.name }

func (l *listener) Commands() []commands.CommandDescriptor { return l.descs }

func (l *listener) HandleCommand(cmd commands.Command) error {
	l.seen = append(l.seen, cmd.Msg)
	if l.onCmd != nil {
		return l.onCmd(cmd)
	}
	return nil
}

func newTestBus(t *testing.T, mutate func(*Options)) (*Bus, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts := DefaultOptions()
	opts.Output = rec
	opts.Logger = logging.Nop()
	if mutate != nil {
		mutate(&opts)
	}
	return New(commands.NewRegistry(), opts), rec
}

func mustSubscribe(t *testing.T, b *Bus, sub Subscriber) string {
	t.Helper()
	id, err := b.Subscribe(sub)
	require.NoError(t, err)
	return id
}

// =============================================================================
// DISPATCH TESTS
// =============================================================================

func TestBroadcastOrder(t *testing.T) {
	b, _ := newTestBus(t, nil)

	var order []string
	for _, name := range []string{"A", "B", "C"} {
		name := name
		mustSubscribe(t, b, &listener{name: name, onCmd: func(commands.Command) error {
			order = append(order, name)
			return nil
		}})
	}

	require.NoError(t, b.PostCommand(commands.NewCommand("anything")))
	require.NoError(t, b.PostCommand(commands.NewCommand("other")))
	assert.Equal(t, []string{"A", "B", "C", "A", "B", "C"}, order)
}

func TestPostEchoesAndParses(t *testing.T) {
	b, rec := newTestBus(t, nil)
	l := &listener{name: "l"}
	mustSubscribe(t, b, l)
	rec.lines = nil

	require.NoError(t, b.Post(`  spawn.cube 1 "2" 3 `))
	assert.Equal(t, []string{"spawn.cube"}, l.seen)
	assert.Equal(t, []string{
		`  spawn.cube 1 "2" 3 `,
		"Command: [spawn.cube, (1, 2, 3)]",
	}, rec.texts())
}

func TestPostWithoutCommandEcho(t *testing.T) {
	b, rec := newTestBus(t, func(o *Options) { o.LogCommands = false })
	rec.lines = nil

	require.NoError(t, b.Post("nobody.handles this"))
	assert.Equal(t, []string{"nobody.handles this"}, rec.texts(), "unknown commands are dropped silently")
}

func TestReentrantPost(t *testing.T) {
	b, _ := newTestBus(t, nil)

	var calls []string
	echo := &listener{name: "echo", onCmd: func(cmd commands.Command) error {
		switch cmd.Msg {
		case "echo":
			calls = append(calls, "echo")
			return b.Post("echo.reply " + strings.Join(cmd.Args, " "))
		case "echo.reply":
			calls = append(calls, "echo.reply")
		}
		return nil
	}}
	mustSubscribe(t, b, echo)

	require.NoError(t, b.Post("echo hi"))
	assert.Equal(t, []string{"echo", "echo.reply"}, calls)
}

func TestDispatchUsesSnapshot(t *testing.T) {
	b, _ := newTestBus(t, nil)

	c := &listener{name: "C"}
	d := &listener{name: "D"}
	a := &listener{name: "A", onCmd: func(commands.Command) error {
		b.Unsubscribe(c)
		_, err := b.Subscribe(d)
		return err
	}}
	mustSubscribe(t, b, a)
	mustSubscribe(t, b, c)

	require.NoError(t, b.PostCommand(commands.NewCommand("first")))
	assert.Equal(t, []string{"first"}, c.seen, "removed mid-dispatch still gets the current pass")
	assert.Empty(t, d.seen, "added mid-dispatch waits for the next pass")

	a.onCmd = nil
	require.NoError(t, b.PostCommand(commands.NewCommand("second")))
	assert.Equal(t, []string{"first"}, c.seen)
	assert.Equal(t, []string{"second"}, d.seen)
}

func TestHandlerFailureIsolated(t *testing.T) {
	b, rec := newTestBus(t, nil)

	failing := &listener{name: "failing", onCmd: func(commands.Command) error {
		return errors.New("boom")
	}}
	after := &listener{name: "after"}
	mustSubscribe(t, b, failing)
	mustSubscribe(t, b, after)

	err := b.PostCommand(commands.NewCommand("go"))
	require.Error(t, err)

	var herr *HandlerError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, "failing", herr.Subscriber)
	assert.Equal(t, "go", herr.Command)
	assert.False(t, herr.Panicked)

	assert.Equal(t, []string{"go"}, after.seen)
	assert.True(t, rec.contains(LevelError, "failing failed handling go: boom"))
}

func TestHandlerFailureAborts(t *testing.T) {
	b, _ := newTestBus(t, func(o *Options) { o.IsolateFailures = false })

	mustSubscribe(t, b, &listener{name: "failing", onCmd: func(commands.Command) error {
		return errors.New("boom")
	}})
	after := &listener{name: "after"}
	mustSubscribe(t, b, after)

	require.Error(t, b.PostCommand(commands.NewCommand("go")))
	assert.Empty(t, after.seen)
}

func TestHandlerPanicRecovered(t *testing.T) {
	b, rec := newTestBus(t, nil)

	mustSubscribe(t, b, &listener{name: "panicky", onCmd: func(commands.Command) error {
		panic("bad state")
	}})
	after := &listener{name: "after"}
	mustSubscribe(t, b, after)

	var err error
	require.NotPanics(t, func() { err = b.PostCommand(commands.NewCommand("go")) })

	var herr *HandlerError
	require.ErrorAs(t, err, &herr)
	assert.True(t, herr.Panicked)
	assert.Equal(t, []string{"go"}, after.seen)
	assert.True(t, rec.contains(LevelError, "panicky panicked handling go: bad state"))
}

func TestDepthGuard(t *testing.T) {
	b, rec := newTestBus(t, func(o *Options) {
		o.MaxDepth = 5
		o.LogCommands = false
	})

	calls := 0
	mustSubscribe(t, b, &listener{name: "loop", onCmd: func(cmd commands.Command) error {
		if cmd.Msg != "loop" {
			return nil
		}
		calls++
		return b.Post("loop")
	}})

	err := b.Post("loop")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDispatchDepth)
	assert.Equal(t, 5, calls)

	n := 0
	for _, l := range rec.lines {
		if l.Level == LevelError && strings.Contains(l.Text, "Dispatch depth limit (5)") {
			n++
		}
	}
	assert.Equal(t, 1, n, "the limit is reported once")

	// The bus recovers once the stack unwinds.
	require.NoError(t, b.Post("unrelated"))
}

// =============================================================================
// SUBSCRIPTION TESTS
// =============================================================================

func TestSubscribeNil(t *testing.T) {
	b, _ := newTestBus(t, nil)
	before := len(b.Subscribers())

	_, err := b.Subscribe(nil)
	assert.ErrorIs(t, err, ErrNilSubscriber)

	var typed *listener
	_, err = b.Subscribe(typed)
	assert.ErrorIs(t, err, ErrNilSubscriber)
	assert.Len(t, b.Subscribers(), before)
}

func TestSubscribeRegistersDescriptors(t *testing.T) {
	b, _ := newTestBus(t, nil)
	l := &listener{name: "spawner", descs: []commands.CommandDescriptor{{Msg: "spawn.cube"}}}
	mustSubscribe(t, b, l)

	_, ok := b.Registry().Lookup("spawn.cube")
	assert.True(t, ok)

	// Unsubscribing keeps the descriptor.
	assert.True(t, b.Unsubscribe(l))
	assert.False(t, b.Unsubscribe(l))
	_, ok = b.Registry().Lookup("spawn.cube")
	assert.True(t, ok)
}

func TestUnsubscribeID(t *testing.T) {
	b, _ := newTestBus(t, nil)
	l := &listener{name: "l"}
	id := mustSubscribe(t, b, l)

	assert.Len(t, b.Subscribers(), 2)
	assert.True(t, b.UnsubscribeID(id))
	assert.False(t, b.UnsubscribeID(id))

	require.NoError(t, b.PostCommand(commands.NewCommand("x")))
	assert.Empty(t, l.seen)
}

func TestSubscribersListsBuiltinsFirst(t *testing.T) {
	b, _ := newTestBus(t, nil)
	mustSubscribe(t, b, &listener{name: "spawner"})

	infos := b.Subscribers()
	require.Len(t, infos, 2)
	assert.Equal(t, "console", infos[0].Name)
	assert.Equal(t, "spawner", infos[1].Name)
	assert.NotEqual(t, infos[0].ID, infos[1].ID)
}

type unnamed struct{}

func (unnamed) HandleCommand(commands.Command) error        { return nil }
func (unnamed) Commands() []commands.CommandDescriptor { return nil }

func TestSubscriberNameFallsBackToType(t *testing.T) {
	assert.Equal(t, "bus.unnamed", SubscriberName(unnamed{}))
}

// =============================================================================
// OUTPUT TESTS
// =============================================================================

func TestVerboseGate(t *testing.T) {
	b, rec := newTestBus(t, func(o *Options) { o.Verbose = false })
	b.Verbose("hidden")
	assert.False(t, rec.contains(LevelVerbose, "hidden"))

	b.verbose = true
	b.Verbose("shown")
	assert.True(t, rec.contains(LevelVerbose, "shown"))
}

func observedBus(t *testing.T, logToHost bool) (*Bus, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	b, _ := newTestBus(t, func(o *Options) {
		o.LogToHost = logToHost
		o.Verbose = false
		o.Logger = &logging.Logger{SugaredLogger: zap.New(core).Sugar()}
	})
	return b, logs
}

func TestHostForwarding(t *testing.T) {
	b, logs := observedBus(t, true)
	b.Log("info line")
	b.Warn("warn line")
	b.Error("error line")
	b.Print("listing")

	var got []string
	for _, e := range logs.All() {
		got = append(got, e.Level.String()+":"+e.Message)
	}
	assert.Equal(t, []string{"info:info line", "warn:warn line", "error:error line"}, got)
}

func TestHostForwardingOffStillForwardsErrors(t *testing.T) {
	b, logs := observedBus(t, false)
	b.Log("info line")
	b.Warn("warn line")
	b.Error("error line")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "error line", logs.All()[0].Message)
}

// =============================================================================
// ACTIVATION TESTS
// =============================================================================

func TestActivation(t *testing.T) {
	b, _ := newTestBus(t, nil)

	var events []string
	b.OnActivation("first", func(active bool) {
		if active {
			events = append(events, "first:on")
		} else {
			events = append(events, "first:off")
		}
	})
	id := b.OnActivation("second", func(active bool) {
		events = append(events, "second")
	})

	b.SetActive(true)
	b.SetActive(true) // no change, no broadcast
	assert.True(t, b.Active())
	assert.Equal(t, []string{"first:on", "second"}, events)

	require.True(t, b.RemoveActivation(id))
	assert.False(t, b.RemoveActivation(id))

	b.SetActive(false)
	assert.Equal(t, []string{"first:on", "second", "first:off"}, events)
}
