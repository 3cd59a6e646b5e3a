// devconsole - an in-process developer console with a terminal host.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jeranaias/devconsole/internal/cli"
	"github.com/jeranaias/devconsole/internal/config"
	"github.com/jeranaias/devconsole/internal/console"
	"github.com/jeranaias/devconsole/internal/logging"
	"github.com/jeranaias/devconsole/internal/macro"
	"github.com/jeranaias/devconsole/internal/samples"
	"github.com/jeranaias/devconsole/internal/ui/consoleui"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	cmd, args := cli.Parse(argv)

	switch cmd {
	case cli.CmdHelp:
		cli.PrintUsage(os.Stdout)
		return 0
	case cli.CmdVersion:
		cli.PrintVersion(os.Stdout)
		return 0
	case cli.CmdUnknown:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args.Unknown)
		if s := cli.SuggestCommand(args.Unknown); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean %q?\n", s)
		}
		fmt.Fprintln(os.Stderr, "Run 'devconsole help' for usage.")
		return 2
	}

	cfg, cfgPath, cfgWarn, err := loadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log, err := logging.Init("devconsole", cfg.LoggingOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		log = logging.L()
	}
	defer logging.Sync()
	log.Infow("starting", "command", cmd.String(), "version", Version, "config", cfgPath)
	if cfgWarn != nil {
		fmt.Fprintf(os.Stderr, "Warning: using default config: %v\n", cfgWarn)
		log.Warnw("config unreadable, using defaults", "path", cfgPath, "error", cfgWarn)
	}

	printer := cli.NewPrinter(os.Stdout, cli.ColorProfile(args.NoColor))

	switch cmd {
	case cli.CmdConfig:
		return exitCode(cli.HandleConfig(cfg, cfgPath, args, printer))
	case cli.CmdMacros:
		return exitCode(cli.HandleMacros(cfg, args, printer))
	}

	interactiveTUI := cmd == cli.CmdTUI && cli.IsTTY()

	opts := []console.Option{console.WithConfig(cfg), console.WithLogger(log)}
	if !interactiveTUI {
		opts = append(opts, console.WithOutput(printer))
	}
	c := console.New(opts...)
	defer c.Close()

	spawner := samples.NewSpawner(c.Bus())
	if _, err := c.Subscribe(spawner); err != nil {
		log.Errorw("subscribe failed", "subscriber", spawner.String(), "error", err)
	}
	activation := samples.NewActivationLogger(c.Bus())
	defer activation.Close()

	if cfg.Macros.Path != "" {
		// Failures were printed to the console; the host carries on without macros.
		if err := c.LoadMacros(cfg.Macros.Path); err != nil && !errors.Is(err, console.ErrNoMacroListing) {
			log.Warnw("macros unavailable", "path", cfg.Macros.Path, "error", err)
		}
	}

	switch cmd {
	case cli.CmdRun:
		return exitCode(cli.RunLines(c, args.Raw))
	case cli.CmdREPL:
		return exitCode(cli.RunREPL(c, printer, os.Stdin, cli.IsTTY()))
	}

	if !interactiveTUI {
		// Piped into the default command: treat stdin as a script.
		return exitCode(cli.RunScript(c, os.Stdin))
	}
	return exitCode(runTUI(c, cfg))
}

// loadConfig loads --config if given, the default location otherwise, and
// applies command-line overrides. It returns the path the configuration
// belongs to. A broken file at the default location is not fatal: the
// defaults are used and the load error comes back as warn.
func loadConfig(args cli.Args) (cfg *config.Config, path string, warn error, err error) {
	if args.ConfigPath != "" {
		path = args.ConfigPath
		if cfg, err = config.LoadFromPath(path); err != nil {
			return nil, "", nil, err
		}
	} else {
		if path, err = config.ConfigPathTOML(); err != nil {
			return nil, "", nil, err
		}
		// Load hands back defaults alongside the error when the file is unusable.
		cfg, warn = config.Load()
		if cfg == nil {
			return nil, "", nil, warn
		}
	}

	if args.Verbose {
		cfg.Console.Verbose = true
	}
	if args.Quiet {
		cfg.Console.LogCommands = false
	}
	if args.MacroPath != "" {
		cfg.Macros.Path = args.MacroPath
	}
	return cfg, path, warn, nil
}

func runTUI(c *console.Console, cfg *config.Config) error {
	var opts []consoleui.Option
	if cfg.Macros.Watch && c.MacroPath() != "" {
		debounce := time.Duration(cfg.Macros.DebounceMillis) * time.Millisecond
		w, err := startWatcher(c.MacroPath(), debounce)
		if err != nil {
			logging.L().Warnw("macro hot reload disabled", "path", c.MacroPath(), "error", err)
		} else {
			defer w.Close()
			opts = append(opts, consoleui.WithWatcher(w))
		}
	}
	return consoleui.Run(c, cfg, opts...)
}

func startWatcher(path string, debounce time.Duration) (*macro.Watcher, error) {
	w, err := macro.NewWatcher(path, debounce)
	if err != nil {
		return nil, err
	}
	if err := w.Watch(); err != nil {
		_ = w.Close()
		return nil, err
	}
	return w, nil
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
