// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package macro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/devconsole/internal/commands"
)

func spawnRow() Definition {
	return Definition{
		CommandName: "row",
		Commands:    []string{"spawn %x %y"},
		Args: []ArgSpec{
			{ID: "x", Type: "float", Name: "X"},
			{ID: "y", Type: "float", Name: "Y", Default: "0"},
		},
	}
}

// =============================================================================
// EXPAND TESTS
// =============================================================================

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		def      Definition
		provided []string
		want     []string
	}{
		{"default fills missing", spawnRow(), []string{"5"}, []string{"spawn 5 0"}},
		{"all provided", spawnRow(), []string{"5", "7"}, []string{"spawn 5 7"}},
		{"extra args ignored", spawnRow(), []string{"5", "7", "9"}, []string{"spawn 5 7"}},
		{
			name: "every occurrence replaced",
			def: Definition{
				Commands: []string{"spawn.cube %n %n %n", "echo %n"},
				Args:     []ArgSpec{{ID: "n"}},
			},
			provided: []string{"2"},
			want:     []string{"spawn.cube 2 2 2", "echo 2"},
		},
		{
			name: "longer ids first",
			def: Definition{
				Commands: []string{"a %x %xy"},
				Args:     []ArgSpec{{ID: "x"}, {ID: "xy"}},
			},
			provided: []string{"1", "2"},
			want:     []string{"a 1 2"},
		},
		{
			name: "values are not rescanned",
			def: Definition{
				Commands: []string{"say %a %b"},
				Args:     []ArgSpec{{ID: "a"}, {ID: "b"}},
			},
			provided: []string{"%b", "x"},
			want:     []string{"say %b x"},
		},
		{
			name:     "no args",
			def:      Definition{Commands: []string{"console.clear", "help"}},
			provided: nil,
			want:     []string{"console.clear", "help"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.def, tt.provided)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandMissingArgument(t *testing.T) {
	got, err := Expand(spawnRow(), nil)
	require.Error(t, err)
	assert.Nil(t, got)

	var missing *MissingArgumentError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 0, missing.ArgIndex)
	assert.Equal(t, "row", missing.Macro)
	assert.Equal(t, "Macro Error: Argument 0 is required.", err.Error())
}

func TestExpandDefaults(t *testing.T) {
	assert.Equal(t, []string{"spawn  0"}, ExpandDefaults(spawnRow()))
}

// =============================================================================
// VALIDATE TESTS
// =============================================================================

func TestValidateAcceptsGoodListing(t *testing.T) {
	in := &Listing{Macros: []Definition{
		spawnRow(),
		{CommandName: "reset", TriggerKey: "F5", Desc: "  Resets\n    everything.  \n"},
	}}

	out, warnings, err := Validate(in, nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, out.Macros, 2)
	assert.Equal(t, "f5", out.Macros[1].TriggerKey)
	assert.Equal(t, "Resets\neverything.", out.Macros[1].Desc)

	// Input is untouched.
	assert.Equal(t, "F5", in.Macros[1].TriggerKey)
}

func TestValidateDropsBadKeys(t *testing.T) {
	in := &Listing{Macros: []Definition{
		{CommandName: "a", TriggerKey: "f5"},
		{CommandName: "b", TriggerKey: "F5"},
		{CommandName: "c", TriggerKey: "hyperkey"},
		{CommandName: "d", TriggerKey: "g"},
	}}

	out, warnings, err := Validate(in, nil)
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Equal(t, 1, warnings[0].Macro)
	assert.Equal(t, "Macro 1 attribute `keyName` F5 is already in use. Removing keyName.", warnings[0].Message)
	assert.Equal(t, 2, warnings[1].Macro)
	assert.Contains(t, warnings[1].Message, "invalid key: hyperkey")

	var keys []string
	for _, d := range out.Macros {
		keys = append(keys, d.TriggerKey)
	}
	assert.Equal(t, []string{"f5", "", "", "g"}, keys)
}

func TestValidateCustomKeyValidator(t *testing.T) {
	only := func(name string) bool { return name == "space" }
	in := &Listing{Macros: []Definition{
		{CommandName: "a", TriggerKey: "space"},
		{CommandName: "b", TriggerKey: "g"},
	}}

	out, warnings, err := Validate(in, only)
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
	assert.Equal(t, "space", out.Macros[0].TriggerKey)
	assert.Empty(t, out.Macros[1].TriggerKey)
}

func TestValidateFatal(t *testing.T) {
	tests := []struct {
		name    string
		listing *Listing
		want    []string
	}{
		{
			name:    "duplicate command name",
			listing: &Listing{Macros: []Definition{{CommandName: "row"}, {CommandName: "row"}}},
			want:    []string{"Macro 1 `commandName` row is already in use. Choose a different command name."},
		},
		{
			name:    "missing command name",
			listing: &Listing{Macros: []Definition{{Commands: []string{"help"}}}},
			want:    []string{"Macro 0 missing required attribute `commandName`"},
		},
		{
			name: "required after optional",
			listing: &Listing{Macros: []Definition{{
				CommandName: "bad",
				Args:        []ArgSpec{{ID: "a"}, {ID: "b", Default: "1"}, {ID: "c"}},
			}}},
			want: []string{"Macro 0, Arg 2 is required but follows an optional argument."},
		},
		{
			name: "duplicate arg id",
			listing: &Listing{Macros: []Definition{{
				CommandName: "dup",
				Commands:    []string{"spawn.cube %x %x 0"},
				Args:        []ArgSpec{{ID: "x"}, {ID: "y"}, {ID: "x"}},
			}}},
			want: []string{"Macro 0, Arg 2 id `x` is already in use. Choose a different id."},
		},
		{
			name: "every error reported",
			listing: &Listing{Macros: []Definition{
				{CommandName: ""},
				{CommandName: "x", Args: []ArgSpec{{ID: "a", Default: "1"}, {ID: "b"}}},
			}},
			want: []string{
				"Macro 0 missing required attribute `commandName`",
				"Macro 1, Arg 1 is required but follows an optional argument.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := Validate(tt.listing, nil)
			require.Error(t, err)
			assert.Nil(t, out)

			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			var got []string
			for _, e := range verrs {
				got = append(got, e.Message)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateNil(t *testing.T) {
	out, warnings, err := Validate(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Empty(t, out.Macros)
}

// =============================================================================
// DESCRIPTOR TESTS
// =============================================================================

func TestDescriptors(t *testing.T) {
	def := spawnRow()
	def.Desc = "Spawns a row."
	def.Args = append(def.Args, ArgSpec{ID: "label", Default: "row"})

	descs := Descriptors(&Listing{Macros: []Definition{def, {CommandName: "reset"}}})
	require.Len(t, descs, 2)

	assert.Equal(t, commands.CommandDescriptor{
		Msg:  "macro.row",
		Desc: "Spawns a row.",
		Args: []commands.ArgDescriptor{
			{Name: "X", Type: commands.ArgFloat},
			{Name: "Y", Type: commands.ArgFloat, Optional: true},
			{Name: "", Type: commands.ArgString, Optional: true},
		},
	}, descs[0])
	assert.Equal(t, "macro.reset", descs[1].String())
	assert.Nil(t, descs[1].Args)
}
