// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to input, or "" when nothing is
// close enough to be a plausible typo. The allowed edit distance grows with
// the input length: 1 edit up to 3 characters, 2 up to 8, 3 beyond.
func Suggest(input string, candidates []string) string {
	input = strings.ToLower(input)

	// Very short inputs are likely intentional.
	if len(input) < 2 {
		return ""
	}

	maxDistance := 1
	if len(input) >= 4 {
		maxDistance = 2
	}
	if len(input) > 8 {
		maxDistance = 3
	}

	bestMatch := ""
	bestDistance := -1
	for _, candidate := range candidates {
		distance := levenshtein.ComputeDistance(input, strings.ToLower(candidate))
		if distance == 0 {
			return ""
		}
		if distance <= maxDistance && (bestDistance == -1 || distance < bestDistance) {
			bestDistance = distance
			bestMatch = candidate
		}
	}

	return bestMatch
}
