// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bus

import (
	"fmt"
	"strings"

	"github.com/jeranaias/devconsole/internal/commands"
	"github.com/jeranaias/devconsole/internal/util"
)

// Built-in command names.
const (
	CmdVerbose     = "console.verbose"
	CmdLogCommands = "console.logCommands"
	CmdLogToHost   = "console.logToHost"
	CmdLogToUnity  = "console.logToUnity" // older name for CmdLogToHost
	CmdSubscribers = "console.subscribers"
	CmdClear       = "console.clear"
	CmdHelp        = "help"
	CmdMan         = "man"
)

// builtins handles the console's own commands. It is always the first
// subscriber on a bus.
type builtins struct {
	bus *Bus
}

func (builtins) String() string { return "console" }

// Commands implements Subscriber.
func (builtins) Commands() []commands.CommandDescriptor {
	boolArg := func(name, desc string) []commands.ArgDescriptor {
		return []commands.ArgDescriptor{{Name: name, Type: commands.ArgBool, Optional: true, Desc: desc}}
	}
	return []commands.CommandDescriptor{
		{
			Msg:  CmdVerbose,
			Desc: "Sets or toggles verbose output.",
			Args: boolArg("useVerbose?", "Omit to toggle"),
		},
		{
			Msg:  CmdLogCommands,
			Desc: "Sets or toggles echoing of every dispatched command.",
			Args: boolArg("logCommands?", "Omit to toggle"),
		},
		{
			Msg:  CmdLogToHost,
			Desc: "Sets or toggles forwarding of console output to the host log.",
			Args: boolArg("forwardToHost?", "Omit to toggle"),
		},
		{
			Msg:  CmdLogToUnity,
			Desc: "Same as console.logToHost.",
			Args: boolArg("forwardToHost?", "Omit to toggle"),
		},
		{Msg: CmdSubscribers, Desc: "Lists everything subscribed to the command bus."},
		{Msg: CmdClear, Desc: "Clears the console output."},
		{
			Msg:  CmdHelp,
			Desc: "Lists every known command, or those whose name contains filter.",
			Args: []commands.ArgDescriptor{{Name: "filter", Type: commands.ArgString, Optional: true, Desc: "Substring to match"}},
		},
		{
			Msg:  CmdMan,
			Desc: "Prints a detailed description about the specified command.",
			Args: []commands.ArgDescriptor{{Name: "commandName", Type: commands.ArgString, Desc: "Name of command to view manpage of"}},
		},
	}
}

// HandleCommand implements Subscriber.
func (s *builtins) HandleCommand(cmd commands.Command) error {
	b := s.bus
	switch cmd.Msg {
	case CmdVerbose:
		s.toggle(cmd, &b.verbose)
	case CmdLogCommands:
		s.toggle(cmd, &b.logCommands)
	case CmdLogToHost, CmdLogToUnity:
		s.toggle(cmd, &b.logToHost)
	case CmdSubscribers:
		b.Log("======SUBSCRIBERS======")
		for _, info := range b.Subscribers() {
			b.Log(fmt.Sprintf("%s [%s]", info.Name, info.ID[:8]))
		}
	case CmdClear:
		b.Warn("Not implemented!")
	case CmdHelp:
		s.help(cmd.Args)
	case CmdMan:
		name := CmdMan
		if len(cmd.Args) > 0 {
			name = cmd.Args[0]
		}
		s.man(name)
	}
	return nil
}

// toggle sets flag from the first argument, or flips it when there is none.
func (s *builtins) toggle(cmd commands.Command, flag *bool) {
	b := s.bus
	if len(cmd.Args) >= 1 {
		v, err := util.ParseBool(cmd.Args[0])
		if err != nil {
			b.Warn(fmt.Sprintf("%s: expected a bool, got %q", cmd.Msg, cmd.Args[0]))
			return
		}
		*flag = v
	} else {
		*flag = !*flag
	}
	b.Log(fmt.Sprintf("%s: %t", cmd.Msg, *flag))
}

func (s *builtins) help(args []string) {
	b := s.bus
	descs := b.registry.All()
	if len(args) > 0 {
		descs = b.registry.Matching(args[0])
	}

	var sb strings.Builder
	sb.WriteString("===== COMMAND LISTING =====")
	for _, d := range descs {
		sb.WriteByte('\n')
		sb.WriteString(d.String())
	}
	// Listings stay out of the host log.
	b.Print(sb.String())
}

func (s *builtins) man(name string) {
	b := s.bus
	descs := b.registry.LookupAll(name)
	if len(descs) == 0 {
		b.Warn("Invalid command name")
		if guess := commands.Suggest(name, b.registry.Names()); guess != "" {
			b.Warn(fmt.Sprintf("Did you mean %q?", guess))
		}
		return
	}
	for _, d := range descs {
		b.Log(d.ManPage())
	}
}
