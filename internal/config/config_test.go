// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"DEVCONSOLE_VERBOSE", "DEVCONSOLE_LOG_COMMANDS", "DEVCONSOLE_LOG_TO_HOST",
		"DEVCONSOLE_MACROS", "DEVCONSOLE_LOG_LEVEL", "DEVCONSOLE_ENV",
	} {
		t.Setenv(name, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Console.Verbose)
	assert.True(t, cfg.Console.LogCommands)
	assert.True(t, cfg.Console.LogToHost)
	assert.Equal(t, 128, cfg.Console.MaxEntries)
	assert.Equal(t, "`", cfg.Console.ToggleKey)
}

func TestLoadFromPathTOML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.toml", `
[console]
verbose = false
max_entries = 256

[macros]
path = "macros.xml"
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.False(t, cfg.Console.Verbose)
	assert.Equal(t, 256, cfg.Console.MaxEntries)
	assert.Equal(t, "macros.xml", cfg.Macros.Path)

	// Untouched keys keep defaults.
	assert.True(t, cfg.Console.LogCommands)
	assert.Equal(t, 64, cfg.Console.MaxDispatchDepth)
	assert.Equal(t, 50, cfg.UI.TickMillis)
}

func TestLoadFromPathJSON(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.json", `{"console": {"log_to_host": false, "toggle_key": "f1"}}`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.False(t, cfg.Console.LogToHost)
	assert.Equal(t, "f1", cfg.Console.ToggleKey)
}

func TestLoadFromPathRejectsInvalid(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.toml", `
[console]
toggle_key = "hyperkey"
max_dispatch_depth = 100000

[logging]
mode = "staging"
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)

	var verrs ValidateErrors
	require.ErrorAs(t, err, &verrs)
	fields := make([]string, len(verrs))
	for i, e := range verrs {
		fields[i] = e.Field
	}
	assert.ElementsMatch(t, []string{"console.toggle_key", "console.max_dispatch_depth", "logging.mode"}, fields)
}

func TestLoadFromPathMalformed(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.toml", "[console\nverbose = ")
	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEVCONSOLE_VERBOSE", "off")
	t.Setenv("DEVCONSOLE_LOG_TO_HOST", "not-a-bool")
	t.Setenv("DEVCONSOLE_MACROS", "/tmp/m.yaml")
	t.Setenv("DEVCONSOLE_LOG_LEVEL", "DEBUG")
	t.Setenv("DEVCONSOLE_ENV", "development")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.False(t, cfg.Console.Verbose)
	assert.True(t, cfg.Console.LogToHost, "unparseable values are ignored")
	assert.Equal(t, "/tmp/m.yaml", cfg.Macros.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "dev", cfg.Logging.Mode)
	require.NoError(t, cfg.Validate())
}

func TestLoadWithoutFilesUsesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().Console, cfg.Console)
}

func TestSaveTOMLRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Console.Verbose = false
	cfg.Macros.Path = "macros.toml"
	require.NoError(t, SaveTOML(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# devconsole configuration file"))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestString(t *testing.T) {
	s := Default().String()
	assert.Contains(t, s, "[console]")
	assert.Contains(t, s, "max_entries = 128")
}
