// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration inspection and initialisation.

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jeranaias/devconsole/internal/config"
)

// ErrConfigExists is returned by `config init` when the file is already
// there and --force was not given.
var ErrConfigExists = errors.New("config file already exists (use --force to overwrite)")

// HandleConfig runs `config show`, `config path` and `config init`.
// path is the file in use: --config if given, the default location otherwise.
func HandleConfig(cfg *config.Config, path string, args Args, p *Printer) error {
	parser := NewArgParser(args.Raw)
	sub := parser.Subcommand()
	if sub == "" {
		sub = "show"
	}

	switch sub {
	case "show":
		fmt.Fprint(p.w, cfg.String())
		return nil

	case "path":
		fmt.Fprintln(p.w, path)
		return nil

	case "init":
		if _, err := os.Stat(path); err == nil && !parser.BoolFlag("force") {
			return fmt.Errorf("%s: %w", path, ErrConfigExists)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if !strings.HasSuffix(strings.ToLower(path), ".toml") {
			return fmt.Errorf("config init writes TOML; %s is not a .toml path", path)
		}
		if err := config.SaveTOML(config.Default(), path); err != nil {
			return err
		}
		fmt.Fprintln(p.w, p.Success.Render("Wrote "+path))
		return nil

	default:
		if s := suggestFrom(sub, "show", "path", "init"); s != "" {
			return fmt.Errorf("unknown config subcommand %q (did you mean %q?)", sub, s)
		}
		return fmt.Errorf("unknown config subcommand %q", sub)
	}
}
