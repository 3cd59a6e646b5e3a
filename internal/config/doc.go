// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for devconsole.
//
// Supports both TOML and JSON configuration formats, with defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - ConsoleConfig: Initial console flags, transcript size, dispatch limits
//   - MacroConfig: Macro listing path and hot reload
//   - LoggingConfig: Host log level, mode and path
//   - UIConfig: Tick rate and layout options
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (DEVCONSOLE_*)
//   - ~/.devconsole/config.toml
//   - ~/.devconsole/config.json
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	depth := cfg.Console.MaxDispatchDepth
package config
