// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package macro

import "github.com/jeranaias/devconsole/internal/commands"

const (
	// Prefix is prepended to a macro's command name on the bus.
	Prefix = "macro."

	// ArgPrefix marks an argument reference inside a template.
	ArgPrefix = "%"
)

// ArgSpec describes one macro argument. An empty Default makes the argument
// required.
type ArgSpec struct {
	ID      string `xml:"id,attr" toml:"id" json:"id" yaml:"id"`
	Type    string `xml:"type,attr" toml:"type" json:"type" yaml:"type"`
	Name    string `xml:"name,attr" toml:"name" json:"name" yaml:"name"`
	Desc    string `xml:"desc,attr" toml:"desc" json:"desc" yaml:"desc"`
	Default string `xml:",chardata" toml:"default" json:"default" yaml:"default"`
}

// Optional reports whether the argument has a default.
func (a ArgSpec) Optional() bool {
	return a.Default != ""
}

// Definition is a single macro.
type Definition struct {
	// TriggerKey optionally binds the macro to a key
	TriggerKey string `xml:"keyName,attr" toml:"key_name" json:"keyName" yaml:"keyName"`

	// CommandName is reachable on the bus as "macro.<CommandName>"
	CommandName string `xml:"commandName,attr" toml:"command_name" json:"commandName" yaml:"commandName"`

	// Commands are the templates, posted in order
	Commands []string `xml:"command" toml:"commands" json:"commands" yaml:"commands"`

	Desc string    `xml:"desc" toml:"desc" json:"desc" yaml:"desc"`
	Args []ArgSpec `xml:"args>arg" toml:"args" json:"args" yaml:"args"`
}

// Msg returns the bus name of the macro.
func (d Definition) Msg() string {
	return Prefix + d.CommandName
}

// Descriptor builds the command descriptor published for the macro.
func (d Definition) Descriptor() commands.CommandDescriptor {
	var args []commands.ArgDescriptor
	if len(d.Args) > 0 {
		args = make([]commands.ArgDescriptor, len(d.Args))
		for i, a := range d.Args {
			typ := commands.ArgType(a.Type)
			if typ == "" {
				typ = commands.ArgString
			}
			args[i] = commands.ArgDescriptor{
				Name:     a.Name,
				Type:     typ,
				Optional: a.Optional(),
				Desc:     a.Desc,
			}
		}
	}
	return commands.CommandDescriptor{Msg: d.Msg(), Desc: d.Desc, Args: args}
}

// clone returns a deep copy of d.
func (d Definition) clone() Definition {
	out := d
	out.Commands = append([]string(nil), d.Commands...)
	out.Args = append([]ArgSpec(nil), d.Args...)
	return out
}

// Listing is an ordered set of macros.
type Listing struct {
	Macros []Definition `xml:"macros>macro" toml:"macros" json:"macros" yaml:"macros"`
}

// Descriptors returns one descriptor per macro, in listing order.
func Descriptors(l *Listing) []commands.CommandDescriptor {
	if l == nil {
		return nil
	}
	descs := make([]commands.CommandDescriptor, len(l.Macros))
	for i, d := range l.Macros {
		descs[i] = d.Descriptor()
	}
	return descs
}
