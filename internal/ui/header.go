package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderHeader renders the site bar: title, search field and scroll
// control on the first line, catalog status on the second.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	inner := maxInt(m.width-2, 0)

	left := bg.Render("GlassyUI", styles.Logo)
	switch m.currentView {
	case ViewCatalog:
		left += bg.Spaces(4) + m.search.View()
	case ViewActivity:
		left += bg.Spaces(4) + bg.Render("Activity log", styles.MutedText)
	}

	var right string
	if m.currentView == ViewCatalog {
		if m.body.AtBottom() {
			right = bg.Render("⇊", styles.FaintText)
		} else {
			right = bg.Render("⇊", styles.AccentText.Bold(true)) + bg.Space() + bg.Render("J", styles.MutedText)
		}
	}

	gap := maxInt(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	line1 := left + bg.Spaces(gap) + right

	// Truncate before styling so neither line wraps and the header keeps
	// its fixed height.
	status := m.buildStatusContent(styles, bg)
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Header.Width(m.width).Render(ansi.Truncate(line1, inner, "")),
		styles.Header.Width(m.width).Render(ansi.Truncate(status, inner, "…")),
	)
}

// buildStatusContent builds the catalog status line.
func (m Model) buildStatusContent(styles Styles, bg BgStyle) string {
	compact := m.width < LayoutCompactWidth
	sep := bg.Spaces(2)
	cat := m.page.Catalog()

	var parts []string

	name := cat.Name()
	if name == "" {
		name = "catalog"
	}
	parts = append(parts, bg.Render(name, styles.AccentText))

	parts = append(parts,
		bg.Render(fmt.Sprintf("%d", cat.Len()), styles.Text)+bg.Space()+
			bg.Render("components", styles.MutedText))

	if q := strings.TrimSpace(m.page.Query()); q != "" {
		parts = append(parts,
			bg.Render(fmt.Sprintf("%d", m.page.Len()), styles.Text)+bg.Space()+
				bg.Render("matching", styles.MutedText))
	}

	if !compact && cat.Source() != "" {
		parts = append(parts, bg.Render(truncateMiddle(cat.Source(), 40), styles.FaintText))
	}

	if !m.snapshot.LoadedAt.IsZero() && m.snapshot.Version > 1 {
		parts = append(parts,
			bg.Render("reloaded", styles.MutedText)+bg.Space()+
				bg.Render(humanizeDuration(time.Since(m.snapshot.LoadedAt)), styles.InfoText))
	}

	// Reload error indicator
	if m.snapshot.LastError != nil {
		maxErr := 80
		if compact {
			maxErr = 30
		}
		label := "RELOAD FAILED"
		if m.snapshot.IsFailing() {
			label = fmt.Sprintf("RELOAD FAILED x%d", m.snapshot.ConsecutiveFailures)
		}
		parts = append(parts,
			bg.Render(label, styles.DangerText)+bg.Space()+
				bg.Render(truncate(m.snapshot.LastError.Error(), maxErr), styles.WarningText))
	}

	// Transient notice
	if m.flash != "" {
		parts = append(parts,
			bg.Render("!", styles.WarningText.Bold(true))+bg.Space()+
				bg.Render(m.flash, styles.WarningText))
	}

	return strings.Join(parts, sep)
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Width(m.width).Render(ansi.Truncate(m.help.View(m.keys), maxInt(m.width-2, 0), "…"))
}
