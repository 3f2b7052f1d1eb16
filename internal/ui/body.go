package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	heroTitle    = "Glassmorphic Components"
	heroSubtitle = "Elevate your UI with our collection of beautifully crafted, " +
		"glassmorphic components. Perfect for creating modern, sleek " +
		"interfaces with depth and style."
	heroMaxWidth = 72
)

// gridWidth is the usable width of the card grid.
func (m Model) gridWidth() int {
	return maxInt(m.width-2, 16)
}

// refreshBody re-renders the scrollable catalog body into the viewport,
// keeping the scroll position where possible.
func (m *Model) refreshBody() {
	if !m.ready {
		return
	}
	hero := m.renderHero()
	m.gridTop = lipgloss.Height(hero) + 1

	var b strings.Builder
	b.WriteString(hero)
	b.WriteString("\n\n")
	if cards := m.page.CurrentSlice(); len(cards) > 0 {
		b.WriteString(renderGrid(cards, m.gridWidth(), m.cursor, m.theme.Styles()))
	} else {
		b.WriteString(m.renderEmpty())
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderPager())

	content := lipgloss.NewStyle().PaddingLeft(1).Render(b.String())
	offset := m.body.YOffset
	m.body.SetContent(content)
	m.body.SetYOffset(offset)
}

// renderHero renders the page heading and subtitle.
func (m Model) renderHero() string {
	styles := m.theme.Styles()
	width := minInt(m.gridWidth(), heroMaxWidth)
	title := styles.AccentText.Bold(true).Render(heroTitle)
	subtitle := styles.MutedText.Width(width).Render(heroSubtitle)
	return title + "\n\n" + subtitle
}

// renderEmpty explains an empty result and offers a close title.
func (m Model) renderEmpty() string {
	styles := m.theme.Styles()
	var msg string
	if strings.TrimSpace(m.page.Query()) == "" {
		msg = styles.MutedText.Render("This catalog has no components.")
	} else {
		msg = styles.MutedText.Render(fmt.Sprintf("No components match %q.", strings.TrimSpace(m.page.Query())))
	}
	if suggestion, ok := m.page.Suggestion(); ok {
		msg += "\n" + styles.FaintText.Render("Did you mean ") +
			styles.AccentText.Render(suggestion) + styles.FaintText.Render("?")
	}
	return msg
}

// renderPager renders the Previous/Next controls around the page label.
func (m Model) renderPager() string {
	styles := m.theme.Styles()

	prev := styles.Button.Render("Previous")
	if m.page.PrevDisabled() {
		prev = styles.ButtonDisabled.Render("Previous")
	}
	next := styles.Button.Render("Next")
	if m.page.NextDisabled() {
		next = styles.ButtonDisabled.Render("Next")
	}
	label := styles.Text.Render(m.page.Label())

	width := m.gridWidth()
	room := width - lipgloss.Width(prev) - lipgloss.Width(next) - lipgloss.Width(label)
	if room < 2 {
		return prev + " " + label + " " + next
	}
	left := room / 2
	return prev + strings.Repeat(" ", left) + label + strings.Repeat(" ", room-left) + next
}
