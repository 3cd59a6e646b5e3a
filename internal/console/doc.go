// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console ties the command registry, bus, autocomplete and macro
// engine into one object a host drives.
//
// A host owns exactly one Console and calls it from a single goroutine:
//
//	c := console.New(console.WithConfig(cfg))
//	c.Subscribe(samples.NewSpawner(c.Bus()))
//	c.InputChanged("spawn.c")     // as the user types
//	c.Submit("spawn.cube 1 2 3")  // on enter
//	c.Tick(pressed)               // once per frame
//
// Console output is kept in a fixed size Transcript; the oldest lines are
// recycled first.
package console
