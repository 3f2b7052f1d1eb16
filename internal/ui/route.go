package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/glassy/internal/catalog"
	"github.com/five82/glassy/internal/nav"
)

// routeTitle finds the catalog entry behind a route.
func routeTitle(cat *catalog.Catalog, route string) (catalog.Descriptor, bool) {
	for _, d := range cat.All() {
		if d.Route == route {
			return d, true
		}
	}
	return catalog.Descriptor{}, false
}

// renderRoute renders the placeholder shown after navigating away from the
// catalog page.
func (m Model) renderRoute() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.FaintText.Render("navigated to"))
	b.WriteString("\n")
	b.WriteString(styles.AccentText.Bold(true).Render(m.route))
	b.WriteString("\n\n")

	switch d, ok := routeTitle(m.page.Catalog(), m.route); {
	case m.route == nav.HomePath:
		b.WriteString(styles.Text.Bold(true).Render("GlassyUI home"))
	case ok:
		b.WriteString(styles.AccentText.Render(iconGlyph(d.Icon)) + " " + styles.Text.Bold(true).Render(d.Title))
		if d.Description != "" {
			b.WriteString("\n")
			b.WriteString(styles.MutedText.Width(44).Render(d.Description))
		}
	default:
		b.WriteString(styles.MutedText.Render("This page is outside the component catalog."))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("esc back to catalog  ·  H home  ·  q quit"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
}
