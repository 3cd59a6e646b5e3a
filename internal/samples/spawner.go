// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package samples

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeranaias/devconsole/internal/bus"
	"github.com/jeranaias/devconsole/internal/commands"
)

// Shape is a primitive kind the spawner knows.
type Shape string

const (
	Cube     Shape = "cube"
	Sphere   Shape = "sphere"
	Cylinder Shape = "cylinder"
)

// Shapes lists every spawnable kind, in command order.
var Shapes = []Shape{Cube, Sphere, Cylinder}

// Vec3 is a position.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Object is one spawned primitive.
type Object struct {
	Shape Shape
	Pos   Vec3
}

// Spawner handles spawn.cube, spawn.sphere and spawn.cylinder. Each takes
// an X Y Z position; commands with fewer than three arguments are ignored.
type Spawner struct {
	bus     *bus.Bus
	objects []Object
}

// NewSpawner creates a spawner that reports on b.
func NewSpawner(b *bus.Bus) *Spawner {
	return &Spawner{bus: b}
}

func (s *Spawner) String() string { return "spawner" }

// Commands implements bus.Subscriber.
func (s *Spawner) Commands() []commands.CommandDescriptor {
	pos := []commands.ArgDescriptor{
		{Name: "X", Type: commands.ArgFloat},
		{Name: "Y", Type: commands.ArgFloat},
		{Name: "Z", Type: commands.ArgFloat},
	}
	descs := make([]commands.CommandDescriptor, 0, len(Shapes)+1)
	for _, shape := range Shapes {
		descs = append(descs, commands.CommandDescriptor{
			Msg:  "spawn." + string(shape),
			Desc: fmt.Sprintf("Spawns a %s at the given position.", shape),
			Args: pos,
		})
	}
	descs = append(descs, commands.CommandDescriptor{
		Msg:  "spawn.list",
		Desc: "Lists everything spawned so far.",
	})
	return descs
}

// HandleCommand implements bus.Subscriber.
func (s *Spawner) HandleCommand(cmd commands.Command) error {
	name, ok := strings.CutPrefix(cmd.Msg, "spawn.")
	if !ok {
		return nil
	}
	if name == "list" {
		s.list()
		return nil
	}

	shape := Shape(name)
	if !known(shape) || len(cmd.Args) < 3 {
		return nil
	}
	pos, err := parsePos(cmd.Args)
	if err != nil {
		s.bus.Warn(fmt.Sprintf("%s: %v", cmd.Msg, err))
		return nil
	}
	s.objects = append(s.objects, Object{Shape: shape, Pos: pos})
	s.bus.Verbose(fmt.Sprintf("Spawned %s at %s", shape, pos))
	return nil
}

func (s *Spawner) list() {
	if len(s.objects) == 0 {
		s.bus.Log("Nothing spawned")
		return
	}
	var b strings.Builder
	for i, o := range s.objects {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d: %s %s", i, o.Shape, o.Pos)
	}
	s.bus.Log(b.String())
}

// Objects returns everything spawned so far.
func (s *Spawner) Objects() []Object {
	return append([]Object(nil), s.objects...)
}

func known(shape Shape) bool {
	for _, s := range Shapes {
		if s == shape {
			return true
		}
	}
	return false
}

func parsePos(args []string) (Vec3, error) {
	var v [3]float64
	for i := range v {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return Vec3{}, fmt.Errorf("%q is not a number", args[i])
		}
		v[i] = f
	}
	return Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}
