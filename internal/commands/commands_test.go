// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// PARSER TESTS
// =============================================================================

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMsg  string
		wantArgs []string
	}{
		{"bare name", "foo", "foo", nil},
		{"two args", "foo bar baz", "foo", []string{"bar", "baz"}},
		{"quoted arg", `foo "bar baz" qux`, "foo", []string{"bar baz", "qux"}},
		{"trimmed", "  foo  ", "foo", nil},
		{"empty", "", "", nil},
		{"whitespace only", "   ", "", nil},
		{"dotted name", "console.verbose false", "console.verbose", []string{"false"}},
		{"repeated spaces", "spawn.cube   1  2   3", "spawn.cube", []string{"1", "2", "3"}},
		{"tab separator", "foo\tbar", "foo", []string{"bar"}},
		{"unterminated quote", `say "hello there`, "say", []string{"hello there"}},
		{"embedded quote stripped", `say ab"cd`, "say", []string{"abcd"}},
		{"quote glued to next token", `say "a b"c`, "say", []string{"a b", "c"}},
		{"empty quotes", `say "" x`, "say", []string{"", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.input)
			assert.Equal(t, tt.wantMsg, cmd.Msg)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "Command: [spawn.cube, (1, 2, 3)]", NewCommand("spawn.cube", "1", "2", "3").String())
	assert.Equal(t, "Command: [help, ()]", NewCommand("help").String())
}

func TestCommandName(t *testing.T) {
	assert.Equal(t, "spawn.cube", CommandName("  spawn.cube 1 2 3"))
	assert.Equal(t, "", CommandName(""))
}

// =============================================================================
// DESCRIPTOR TESTS
// =============================================================================

func spawnCube() CommandDescriptor {
	return CommandDescriptor{
		Msg:  "spawn.cube",
		Desc: "Spawns a cube at the given position.",
		Args: []ArgDescriptor{
			{Name: "X", Type: ArgFloat, Desc: "x position"},
			{Name: "Y", Type: ArgFloat, Desc: "y position"},
			{Name: "Z", Type: ArgFloat, Optional: true, Desc: "z position"},
		},
	}
}

func TestDescriptorString(t *testing.T) {
	assert.Equal(t, "spawn.cube float:X float:Y [float:Z]", spawnCube().String())
	assert.Equal(t, "console.clear", CommandDescriptor{Msg: "console.clear"}.String())
}

func TestDescriptorManPage(t *testing.T) {
	want := "spawn.cube\n" +
		"Spawns a cube at the given position.\n" +
		"@ float:X - x position\n" +
		"@ float:Y - y position\n" +
		"@ [float:Z] - z position"
	assert.Equal(t, want, spawnCube().ManPage())
}

func TestDescriptorEqual(t *testing.T) {
	a := spawnCube()
	b := spawnCube()
	assert.True(t, a.Equal(b))

	b.Args[2].Optional = false
	assert.False(t, a.Equal(b))

	c := spawnCube()
	c.Desc = "other"
	assert.False(t, a.Equal(c))
}

func TestDescriptorValidate(t *testing.T) {
	require.NoError(t, spawnCube().Validate())

	bad := CommandDescriptor{
		Msg: "bad",
		Args: []ArgDescriptor{
			{Name: "a", Type: ArgString},
			{Name: "b", Type: ArgString, Optional: true},
			{Name: "c", Type: ArgString},
		},
	}
	err := bad.Validate()
	require.Error(t, err)

	var orderErr *ArgOrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, 2, orderErr.Index)
	assert.Equal(t, "c", orderErr.Arg)
}

// =============================================================================
// REGISTRY TESTS
// =============================================================================

func TestRegistryOrdering(t *testing.T) {
	r := NewRegistry()
	r.Register(
		CommandDescriptor{Msg: "spawn.sphere"},
		CommandDescriptor{Msg: "help"},
		CommandDescriptor{Msg: "console.verbose"},
		CommandDescriptor{Msg: "spawn.cube"},
	)

	var names []string
	for _, d := range r.All() {
		names = append(names, d.Msg)
	}
	assert.Equal(t, []string{"console.verbose", "help", "spawn.cube", "spawn.sphere"}, names)
	assert.Equal(t, names, r.Names())
}

func TestRegistryDeduplicates(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 1, r.Register(spawnCube()))
	assert.Equal(t, 0, r.Register(spawnCube()))
	assert.Equal(t, 1, r.Len())
}

func TestRegistryKeepsOverloads(t *testing.T) {
	r := NewRegistry()
	first := spawnCube()
	second := CommandDescriptor{Msg: "spawn.cube", Desc: "Spawns at the origin."}

	r.Register(first)
	r.Register(second)

	all := r.LookupAll("spawn.cube")
	require.Len(t, all, 2)
	assert.True(t, all[0].Equal(first), "registration order is kept within a name")
	assert.True(t, all[1].Equal(second))

	got, ok := r.Lookup("spawn.cube")
	require.True(t, ok)
	assert.True(t, got.Equal(first))

	assert.Len(t, r.All(), 2)
}

func TestRegistryLookupMissing(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Lookup("nope")
	assert.False(t, ok)
	assert.Empty(t, r.LookupAll("nope"))
}

func TestRegistryCopiesArgs(t *testing.T) {
	r := NewRegistry()
	d := spawnCube()
	r.Register(d)
	d.Args[0].Name = "mutated"

	got, _ := r.Lookup("spawn.cube")
	assert.Equal(t, "X", got.Args[0].Name)
}

func TestRegistryMatchingAndPrefixed(t *testing.T) {
	r := NewRegistry()
	r.Register(
		CommandDescriptor{Msg: "console.verbose"},
		CommandDescriptor{Msg: "console.logCommands"},
		CommandDescriptor{Msg: "spawn.cube"},
		CommandDescriptor{Msg: "macro.spawnRow"},
	)

	var matching []string
	for _, d := range r.Matching("spawn") {
		matching = append(matching, d.Msg)
	}
	assert.Equal(t, []string{"macro.spawnRow", "spawn.cube"}, matching)

	var prefixed []string
	for _, d := range r.Prefixed("console.") {
		prefixed = append(prefixed, d.Msg)
	}
	assert.Equal(t, []string{"console.logCommands", "console.verbose"}, prefixed)

	assert.Len(t, r.Prefixed(""), 4)
	assert.Empty(t, r.Prefixed("zzz"))
}
