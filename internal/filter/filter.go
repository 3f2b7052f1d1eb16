// Package filter derives the visible subset of a catalog from search text.
package filter

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/five82/glassy/internal/catalog"
)

// Normalize returns the form of a query used for matching.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Apply returns the descriptors whose title contains the normalized query,
// case-insensitively, in their original order. Descriptions are not
// searched. A blank query keeps every descriptor.
func Apply(descs []catalog.Descriptor, query string) []catalog.Descriptor {
	needle := Normalize(query)
	out := make([]catalog.Descriptor, 0, len(descs))
	for _, d := range descs {
		if needle == "" || strings.Contains(strings.ToLower(d.Title), needle) {
			out = append(out, d)
		}
	}
	return out
}

// Suggest finds the title closest to query by edit distance, comparing
// against whole titles and their individual words. It reports false for a
// blank query or when nothing is reasonably close.
func Suggest(descs []catalog.Descriptor, query string) (string, bool) {
	needle := Normalize(query)
	if needle == "" {
		return "", false
	}

	best := ""
	bestDist := -1
	for _, d := range descs {
		title := strings.ToLower(d.Title)
		candidates := append([]string{title}, strings.Fields(title)...)
		for _, c := range candidates {
			dist := levenshtein.ComputeDistance(needle, c)
			if bestDist < 0 || dist < bestDist {
				best = d.Title
				bestDist = dist
			}
		}
	}

	limit := (len([]rune(needle)) + 1) / 3
	if limit < 1 {
		limit = 1
	}
	if bestDist < 0 || bestDist > limit {
		return "", false
	}
	return best, true
}
