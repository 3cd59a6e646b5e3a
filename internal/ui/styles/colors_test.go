// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestColorsDefined(t *testing.T) {
	colors := map[string]lipgloss.AdaptiveColor{
		"Purple":        Purple,
		"Cyan":          Cyan,
		"CyanDeep":      CyanDeep,
		"Rose":          Rose,
		"Amber":         Amber,
		"SurfaceDim":    SurfaceDim,
		"TextPrimary":   TextPrimary,
		"TextSecondary": TextSecondary,
		"TextMuted":     TextMuted,
		"TextInverse":   TextInverse,
	}

	for name, c := range colors {
		assert.NotEmpty(t, c.Light, name)
		assert.NotEmpty(t, c.Dark, name)
		assert.Equal(t, byte('#'), c.Light[0], name)
		assert.Equal(t, byte('#'), c.Dark[0], name)
	}
}

func TestLevelIndicatorsDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, ind := range []string{LevelIndicators.Verbose, LevelIndicators.Warning, LevelIndicators.Error} {
		assert.NotEmpty(t, ind)
		assert.False(t, seen[ind], ind)
		seen[ind] = true
	}
}
