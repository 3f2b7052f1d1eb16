package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/glassy/internal/catalog"
)

const learnMore = "Learn more ↗"

// renderCard draws one catalog card at the given outer width. slot is the
// 1-based position on the current page, shown as the digit that opens it.
func renderCard(d catalog.Descriptor, slot, width int, selected bool, styles Styles) string {
	inner := maxInt(width-4, 8) // border + padding

	style := styles.Card
	if selected {
		style = styles.CardFocus
	}

	// Header: icon, title, optional badge
	icon := styles.AccentText.Render(iconGlyph(d.Icon))
	badge := ""
	if status := strings.TrimSpace(d.Status); status != "" {
		badge = " " + styles.BadgeStyle(status).Render(status)
	}
	titleRoom := inner - 2 - lipgloss.Width(badge)
	title := styles.Text.Bold(true).Render(truncate(d.Title, maxInt(titleRoom, 4)))
	header := icon + " " + title + badge

	desc := wrapLines(d.Description, inner, CardDescriptionLines)
	for len(desc) < CardDescriptionLines {
		desc = append(desc, "")
	}
	for i, line := range desc {
		desc[i] = styles.MutedText.Render(line)
	}

	footerLeft := styles.FaintText.Render(fmt.Sprintf("[%d]", slot))
	footerRight := styles.AccentText.Render(learnMore)
	var footer string
	if gap := inner - lipgloss.Width(footerLeft) - lipgloss.Width(footerRight); gap >= 1 {
		footer = footerLeft + strings.Repeat(" ", gap) + footerRight
	} else {
		footer = styles.AccentText.Render(truncate(learnMore, inner))
	}

	lines := make([]string, 0, cardContentLines)
	lines = append(lines, header, "")
	lines = append(lines, desc...)
	lines = append(lines, "", footer)

	return style.Width(width - 2).Height(cardContentLines).Render(strings.Join(lines, "\n"))
}

// renderGrid lays cards out in rows of cols, marking the card under the
// cursor.
func renderGrid(cards []catalog.Descriptor, width, cursor int, styles Styles) string {
	if len(cards) == 0 {
		return ""
	}
	cols := gridColumns(width)
	cw := cardWidth(width, cols)
	gap := strings.Repeat(" ", CardGap)

	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := minInt(start+cols, len(cards))
		rendered := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				rendered = append(rendered, gap)
			}
			rendered = append(rendered, renderCard(cards[i], i+1, cw, i == cursor, styles))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return strings.Join(rows, strings.Repeat("\n", CardRowGap+1))
}

// cardRowOffset returns the line offset of the row holding index within a
// grid rendered by renderGrid.
func cardRowOffset(index, width int) int {
	row := index / gridColumns(width)
	return row * (CardHeight + CardRowGap)
}
