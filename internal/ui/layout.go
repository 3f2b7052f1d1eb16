package ui

import "time"

// Terminal width thresholds for the responsive card grid.
const (
	// LayoutWideWidth is the minimum width for three card columns.
	LayoutWideWidth = 120

	// LayoutMediumWidth is the minimum width for two card columns.
	LayoutMediumWidth = 80

	// LayoutCompactWidth is the threshold below which the header drops the
	// catalog source.
	LayoutCompactWidth = 100
)

// Card geometry.
const (
	// CardGap is the number of blank columns between cards.
	CardGap = 2

	// CardDescriptionLines caps the description block of a card.
	CardDescriptionLines = 3

	// cardContentLines is header + blank + description + blank + footer.
	cardContentLines = 1 + 1 + CardDescriptionLines + 1 + 1

	// CardHeight is the rendered card height including its border.
	CardHeight = cardContentLines + 2

	// CardRowGap is the number of blank lines between card rows.
	CardRowGap = 1
)

// Timing constants.
const (
	// DefaultUIInterval is the default snapshot refresh interval.
	DefaultUIInterval = time.Second
)

// gridColumns mirrors a one/two/three column responsive grid.
func gridColumns(width int) int {
	switch {
	case width >= LayoutWideWidth:
		return 3
	case width >= LayoutMediumWidth:
		return 2
	default:
		return 1
	}
}

// cardWidth returns the outer width of one card for the given body width.
func cardWidth(width, cols int) int {
	if cols <= 0 {
		cols = 1
	}
	w := (width - CardGap*(cols-1)) / cols
	return maxInt(w, 16)
}
