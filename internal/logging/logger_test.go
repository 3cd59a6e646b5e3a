// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLBeforeInitIsNoop(t *testing.T) {
	Reset()
	l := L()
	require.NotNil(t, l)
	l.Infow("ignored", "k", "v")
	assert.Same(t, Nop(), l)
}

func TestWithOnNilLogger(t *testing.T) {
	var l *Logger
	assert.Same(t, Nop(), l.With("k", "v"))
}

func TestInitWritesToPath(t *testing.T) {
	t.Cleanup(Reset)
	path := filepath.Join(t.TempDir(), "logs", "console.log")

	l, err := Init("devconsole", Options{Level: "debug", Mode: ModeProd, Path: path})
	require.NoError(t, err)
	l.Infow("macro reload", "count", 3)
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "macro reload")
	assert.Contains(t, string(data), `"count":3`)
}

func TestInitRejectsBadOptions(t *testing.T) {
	t.Cleanup(Reset)
	_, err := Init("devconsole", Options{Mode: "staging", Path: filepath.Join(t.TempDir(), "x.log")})
	assert.Error(t, err)

	_, err = Init("devconsole", Options{Mode: ModeDev, Level: "loud", Path: filepath.Join(t.TempDir(), "x.log")})
	assert.Error(t, err)
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(Reset)
	InitTest()
	SetLevel(zap.ErrorLevel)
	assert.False(t, L().Desugar().Core().Enabled(zap.InfoLevel))
	SetLevel(zap.DebugLevel)
	assert.True(t, L().Desugar().Core().Enabled(zap.DebugLevel))
}

func TestValidLevel(t *testing.T) {
	for _, l := range []string{"", "debug", "INFO", "warn", "error"} {
		assert.True(t, ValidLevel(l), l)
	}
	assert.False(t, ValidLevel("verbose"))
}
