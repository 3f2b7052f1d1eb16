package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// focusSearch moves keyboard focus into the search field.
func (m *Model) focusSearch() tea.Cmd {
	return m.search.Focus()
}

// handleSearchKey feeds keystrokes to the search field while it has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Confirm) {
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyQuery()
	return m, cmd
}

// setQuery replaces the search text programmatically.
func (m *Model) setQuery(value string) {
	m.search.SetValue(value)
	m.applyQuery()
}

// applyQuery pushes the search field's text into the page.
func (m *Model) applyQuery() {
	if !m.page.SetQuery(m.search.Value()) {
		return
	}
	m.clampCursor()
	m.refreshBody()
	m.logger.Debug("search changed",
		zap.String("query", m.page.Query()),
		zap.Int("matches", m.page.Len()),
		zap.String("page", m.page.Label()))
}
