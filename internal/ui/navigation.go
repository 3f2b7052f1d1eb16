package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/glassy/internal/browse"
	"github.com/five82/glassy/internal/nav"
)

// handleCatalogKey processes keyboard input on the catalog page.
func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.Search):
		return m, m.focusSearch()

	case key.Matches(msg, m.keys.Activity):
		return m, m.openActivity()

	case key.Matches(msg, m.keys.Escape):
		// Clearing the search is the catalog's "back"
		if m.page.Query() != "" {
			m.setQuery("")
		}

	case key.Matches(msg, m.keys.Home):
		m.page.NavigateHome()
		m.enterRoute()

	case key.Matches(msg, m.keys.Open):
		m.activate(m.cursor)

	case key.Matches(msg, m.keys.Slot):
		if i, ok := slotIndex(msg.String()); ok {
			m.activate(i)
		}

	case key.Matches(msg, m.keys.NextPage):
		if m.page.NextPage() {
			m.cursor = 0
			m.refreshBody()
			m.scrollToGrid()
		}

	case key.Matches(msg, m.keys.PrevPage):
		if m.page.PrevPage() {
			m.cursor = 0
			m.refreshBody()
			m.scrollToGrid()
		}

	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-gridColumns(m.gridWidth()))

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(gridColumns(m.gridWidth()))

	case key.Matches(msg, m.keys.ScrollNext):
		m.body.PageDown()

	case key.Matches(msg, m.keys.ScrollUp):
		m.body.PageUp()

	case key.Matches(msg, m.keys.Top):
		m.body.GotoTop()
	}

	return m, nil
}

// handleRouteKey processes keyboard input on a destination placeholder.
func (m Model) handleRouteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.Activity):
		return m, m.openActivity()
	case key.Matches(msg, m.keys.Home):
		m.router.Navigate(nav.HomePath)
		m.enterRoute()
	case key.Matches(msg, m.keys.Escape):
		m.leaveRoute()
	}
	return m, nil
}

// activate opens the card at slot i of the current page.
func (m *Model) activate(i int) {
	if !m.page.Activate(i) {
		m.flash = fmt.Sprintf("No component in slot %d", i+1)
		return
	}
	m.enterRoute()
}

// enterRoute switches to the placeholder for the router's current path.
func (m *Model) enterRoute() {
	path, ok := m.router.Current()
	if !ok {
		return
	}
	m.route = path
	m.currentView = ViewRoute
	m.search.Blur()
}

// leaveRoute goes back to the catalog. The page was torn down when the
// route was entered, so it comes back fresh.
func (m *Model) leaveRoute() {
	from, _ := m.router.Back()
	m.page = browse.New(m.page.Catalog(), m.router, m.pageOpts)
	m.search.SetValue("")
	m.cursor = 0
	m.route = ""
	m.currentView = ViewCatalog
	m.refreshBody()
	m.body.GotoTop()
	m.logger.Debug("returned to catalog", zap.String("from", from))
}

// moveCursor shifts the card cursor by delta within the current page.
func (m *Model) moveCursor(delta int) {
	n := len(m.page.CurrentSlice())
	next := m.cursor + delta
	if n == 0 || next < 0 || next >= n {
		return
	}
	m.cursor = next
	m.refreshBody()
	m.ensureCursorVisible()
}

func (m *Model) clampCursor() {
	n := len(m.page.CurrentSlice())
	if m.cursor >= n {
		m.cursor = maxInt(n-1, 0)
	}
}

// ensureCursorVisible scrolls the body so the selected card is on screen.
func (m *Model) ensureCursorVisible() {
	top := m.gridTop + cardRowOffset(m.cursor, m.gridWidth())
	bottom := top + CardHeight
	switch {
	case top < m.body.YOffset:
		m.body.SetYOffset(top)
	case bottom > m.body.YOffset+m.body.Height:
		m.body.SetYOffset(bottom - m.body.Height)
	}
}

// scrollToGrid brings the first card row into view after a page change.
func (m *Model) scrollToGrid() {
	if m.body.YOffset > m.gridTop {
		m.body.SetYOffset(m.gridTop)
	}
}
