package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggestionCutoff is the largest edit distance still worth suggesting.
const suggestionCutoff = 3

// closestCategory finds the vocabulary label nearest to a typed category.
// It returns nothing for empty input or when the input already matches a
// label exactly (ignoring case); a match beyond the cutoff is considered
// noise rather than a typo.
func closestCategory(input string, vocabulary []string) (string, bool) {
	typed := strings.TrimSpace(strings.ToLower(input))
	if typed == "" {
		return "", false
	}

	best := ""
	bestDist := suggestionCutoff + 1
	for _, label := range vocabulary {
		candidate := strings.ToLower(label)
		if candidate == typed {
			return "", false
		}
		if d := levenshtein.ComputeDistance(typed, candidate); d < bestDist {
			best = label
			bestDist = d
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}
