// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/devconsole/internal/keys"
	"github.com/jeranaias/devconsole/internal/logging"
	"github.com/jeranaias/devconsole/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete devconsole configuration.
type Config struct {
	// Console bus behavior
	Console ConsoleConfig `toml:"console" json:"console"`

	// Macro definitions source
	Macros MacroConfig `toml:"macros" json:"macros"`

	// Host log
	Logging LoggingConfig `toml:"logging" json:"logging"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`
}

// ConsoleConfig contains the initial console flags and limits.
type ConsoleConfig struct {
	// Verbose gates verbose output (console.verbose)
	Verbose bool `toml:"verbose" json:"verbose"`
	// LogCommands echoes dispatched commands (console.logCommands)
	LogCommands bool `toml:"log_commands" json:"log_commands"`
	// LogToHost forwards output to the host log (console.logToHost)
	LogToHost bool `toml:"log_to_host" json:"log_to_host"`
	// MaxEntries is the transcript size; older lines are recycled
	MaxEntries int `toml:"max_entries" json:"max_entries"`
	// MaxDispatchDepth bounds nested posts
	MaxDispatchDepth int `toml:"max_dispatch_depth" json:"max_dispatch_depth"`
	// IsolateFailures keeps dispatching after a handler fails
	IsolateFailures bool `toml:"isolate_failures" json:"isolate_failures"`
	// ToggleKey shows and hides the console
	ToggleKey string `toml:"toggle_key" json:"toggle_key"`
}

// MacroConfig points at the macro listing.
type MacroConfig struct {
	// Path to the listing (.xml, .toml, .json, .yaml); empty disables macros
	Path string `toml:"path" json:"path"`
	// Watch reloads the listing when the file changes
	Watch bool `toml:"watch" json:"watch"`
	// DebounceMillis coalesces bursts of file events
	DebounceMillis int `toml:"debounce_millis" json:"debounce_millis"`
}

// LoggingConfig contains host log settings.
type LoggingConfig struct {
	// Level is debug, info, warn or error
	Level string `toml:"level" json:"level"`
	// Mode is "dev" (console encoding) or "prod" (JSON)
	Mode string `toml:"mode" json:"mode"`
	// Path overrides the log file location
	Path string `toml:"path" json:"path"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// TickMillis is the host tick used to poll macro key bindings
	TickMillis int `toml:"tick_millis" json:"tick_millis"`
	// ShowTimestamps prefixes transcript lines with their time
	ShowTimestamps bool `toml:"show_timestamps" json:"show_timestamps"`
	// CompactMode drops the header and borders
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Console: ConsoleConfig{
			Verbose:          true,
			LogCommands:      true,
			LogToHost:        true,
			MaxEntries:       128,
			MaxDispatchDepth: 64,
			IsolateFailures:  true,
			ToggleKey:        "`",
		},
		Macros: MacroConfig{
			Watch:          true,
			DebounceMillis: 200,
		},
		Logging: LoggingConfig{
			Level: "info",
			Mode:  logging.ModeProd,
		},
		UI: UIConfig{
			TickMillis: 50,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the devconsole configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".devconsole"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	var loadErr error

	if tomlPath, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			cfg, err := LoadFromPath(tomlPath)
			if err == nil {
				return cfg, nil
			}
			loadErr = err
		}
	}

	if loadErr == nil {
		if jsonPath, err := ConfigPathJSON(); err == nil {
			if _, statErr := os.Stat(jsonPath); statErr == nil {
				cfg, err := LoadFromPath(jsonPath)
				if err == nil {
					return cfg, nil
				}
				loadErr = err
			}
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Defaults, with any load error for informational purposes.
	return cfg, loadErr
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// LoadFromPath loads configuration from a specific file with full
// validation. Keys missing from the file keep their default values.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults replaces zero numeric and string values with defaults.
// Booleans can't be told apart from "unset" and are left as decoded.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Console.MaxEntries == 0 {
		cfg.Console.MaxEntries = defaults.Console.MaxEntries
	}
	if cfg.Console.MaxDispatchDepth == 0 {
		cfg.Console.MaxDispatchDepth = defaults.Console.MaxDispatchDepth
	}
	if cfg.Console.ToggleKey == "" {
		cfg.Console.ToggleKey = defaults.Console.ToggleKey
	}
	if cfg.Macros.DebounceMillis == 0 {
		cfg.Macros.DebounceMillis = defaults.Macros.DebounceMillis
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
	if cfg.Logging.Mode == "" {
		cfg.Logging.Mode = defaults.Logging.Mode
	}
	if cfg.UI.TickMillis == 0 {
		cfg.UI.TickMillis = defaults.UI.TickMillis
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML writes the configuration to a TOML file with a short header.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# devconsole configuration file")
	fmt.Fprintln(&buf, "# Generated by devconsole - edit with care")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// String renders the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return buf.String()
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Console.MaxEntries < 1 || c.Console.MaxEntries > 100000 {
		errs = append(errs, ValidationError{
			Field:   "console.max_entries",
			Message: fmt.Sprintf("must be between 1 and 100000, got %d", c.Console.MaxEntries),
		})
	}
	if c.Console.MaxDispatchDepth < 1 || c.Console.MaxDispatchDepth > 4096 {
		errs = append(errs, ValidationError{
			Field:   "console.max_dispatch_depth",
			Message: fmt.Sprintf("must be between 1 and 4096, got %d", c.Console.MaxDispatchDepth),
		})
	}
	if !keys.Valid(c.Console.ToggleKey) {
		errs = append(errs, ValidationError{
			Field:   "console.toggle_key",
			Message: fmt.Sprintf("unknown key %q", c.Console.ToggleKey),
		})
	}

	if c.Macros.DebounceMillis < 0 {
		errs = append(errs, ValidationError{
			Field:   "macros.debounce_millis",
			Message: "must not be negative",
		})
	}

	if !logging.ValidLevel(c.Logging.Level) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("must be debug, info, warn or error, got %q", c.Logging.Level),
		})
	}
	if c.Logging.Mode != logging.ModeDev && c.Logging.Mode != logging.ModeProd {
		errs = append(errs, ValidationError{
			Field:   "logging.mode",
			Message: fmt.Sprintf("must be %q or %q, got %q", logging.ModeDev, logging.ModeProd, c.Logging.Mode),
		})
	}

	if c.UI.TickMillis < 10 || c.UI.TickMillis > 1000 {
		errs = append(errs, ValidationError{
			Field:   "ui.tick_millis",
			Message: fmt.Sprintf("must be between 10 and 1000, got %d", c.UI.TickMillis),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - DEVCONSOLE_VERBOSE: console.verbose
//   - DEVCONSOLE_LOG_COMMANDS: console.log_commands
//   - DEVCONSOLE_LOG_TO_HOST: console.log_to_host
//   - DEVCONSOLE_MACROS: macros.path
//   - DEVCONSOLE_LOG_LEVEL: logging.level
//   - DEVCONSOLE_ENV: logging.mode ("dev" or "prod")
func (c *Config) ApplyEnvOverrides() {
	envBool := func(name string, target *bool) {
		if v := os.Getenv(name); v != "" {
			if b, err := util.ParseBool(v); err == nil {
				*target = b
			}
		}
	}

	envBool("DEVCONSOLE_VERBOSE", &c.Console.Verbose)
	envBool("DEVCONSOLE_LOG_COMMANDS", &c.Console.LogCommands)
	envBool("DEVCONSOLE_LOG_TO_HOST", &c.Console.LogToHost)

	if path := os.Getenv("DEVCONSOLE_MACROS"); path != "" {
		c.Macros.Path = path
	}
	if level := os.Getenv("DEVCONSOLE_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	switch strings.ToLower(os.Getenv("DEVCONSOLE_ENV")) {
	case "dev", "development":
		c.Logging.Mode = logging.ModeDev
	case "prod", "production":
		c.Logging.Mode = logging.ModeProd
	}
}

// LoggingOptions converts the logging section for logging.Init.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{
		Level: c.Logging.Level,
		Mode:  c.Logging.Mode,
		Path:  c.Logging.Path,
	}
}
