package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/glassy/internal/browse"
	"github.com/five82/glassy/internal/catalog"
	"github.com/five82/glassy/internal/nav"
	"github.com/five82/glassy/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewCatalog View = iota
	ViewRoute
	ViewActivity
)

// activityTailLines caps how much of the log the activity view reads.
const activityTailLines = 400

const (
	headerLines = 2
	footerLines = 1
)

// Options configures the UI.
type Options struct {
	Context           context.Context
	Store             *state.Store
	Catalog           *catalog.Catalog // used until the store publishes one
	Router            *nav.Router
	Logger            *zap.Logger
	PollTick          time.Duration
	ThemeName         string
	ResetPageOnFilter bool
	LogPath           string // empty when file logging is off
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx      context.Context
	store    *state.Store
	router   *nav.Router
	logger   *zap.Logger
	pollTick time.Duration
	pageOpts browse.Options

	// UI state
	theme       Theme
	keys        keyMap
	help        help.Model
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool
	flash       string // one-shot notice cleared by the next key

	// Catalog page
	page    *browse.Page
	search  textinput.Model
	body    viewport.Model
	cursor  int
	gridTop int // line where the card grid starts inside body

	// Route view
	route string

	// Activity view
	logPath       string
	activity      viewport.Model
	activityLines []string
	activityErr   error
	activityFrom  View

	// Data state
	snapshot       state.Snapshot
	catalogVersion int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultUIInterval
	}

	router := opts.Router
	if router == nil {
		router = nav.NewRouter(logger)
	}

	cat := opts.Catalog
	var snap state.Snapshot
	if opts.Store != nil {
		snap = opts.Store.Snapshot()
		if snap.HasCatalog() {
			cat = snap.Catalog
		}
	}
	if cat == nil {
		cat = catalog.Default()
	}

	search := textinput.New()
	search.Placeholder = "Search Component"
	search.Prompt = "⌕ "
	search.CharLimit = 64
	search.Width = 24

	pageOpts := browse.Options{ResetPageOnFilter: opts.ResetPageOnFilter}

	m := Model{
		ctx:            ctx,
		store:          opts.Store,
		router:         router,
		logger:         logger,
		pollTick:       pollTick,
		pageOpts:       pageOpts,
		theme:          GetTheme(opts.ThemeName),
		keys:           DefaultKeyMap(),
		help:           help.New(),
		currentView:    ViewCatalog,
		page:           browse.New(cat, router, pageOpts),
		search:         search,
		logPath:        opts.LogPath,
		snapshot:       snap,
		catalogVersion: snap.Version,
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.flash = ""
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.body = viewport.New(m.width, m.bodyHeight())
			m.activity = viewport.New(m.width, m.bodyHeight())
		}
		m.ready = true
		m.resize()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case activityMsg:
		m.applyActivity(msg)
		return m, nil
	}

	// Cursor blink and other input internals
	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	var body string
	switch m.currentView {
	case ViewRoute:
		body = m.renderRoute()
	case ViewActivity:
		body = m.renderActivity()
	default:
		body = m.body.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Handle help overlay
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch m.currentView {
	case ViewRoute:
		return m.handleRouteKey(msg)
	case ViewActivity:
		return m.handleActivityKey(msg)
	default:
		return m.handleCatalogKey(msg)
	}
}

// handleTick processes the refresh tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Fetch latest snapshot
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}

	// Follow the log while it is on screen
	if m.currentView == ViewActivity {
		cmds = append(cmds, loadActivityCmd(m.logPath))
	}

	// Schedule next tick
	cmds = append(cmds, tickCmd(m.pollTick))

	return m, tea.Batch(cmds...)
}

// applySnapshot records the latest reload state and swaps in a newer catalog.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	if !snap.HasCatalog() || snap.Version == m.catalogVersion {
		return
	}
	m.catalogVersion = snap.Version
	m.page.ReplaceCatalog(snap.Catalog)
	m.clampCursor()
	m.refreshBody()
	m.logger.Info("catalog swapped in",
		zap.Int("version", snap.Version),
		zap.Int("components", snap.Catalog.Len()),
		zap.String("source", snap.Catalog.Source()))
}

// cycleTheme moves to the next theme for this session.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyTheme()
	m.refreshBody()
	m.logger.Info("theme changed", zap.String("theme", m.theme.Name))
}

// applyTheme pushes theme colors into the bubbles components.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()

	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
	m.search.Cursor.Style = styles.AccentText

	bg := lipgloss.Color(m.theme.Surface)
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent)).Background(bg)
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted)).Background(bg)
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint)).Background(bg)
	m.help.Styles.Ellipsis = m.help.Styles.ShortSeparator
}

// resize recomputes widget sizes after a terminal resize.
func (m *Model) resize() {
	m.body.Width = m.width
	m.body.Height = m.bodyHeight()
	m.activity.Width = m.width
	m.activity.Height = m.bodyHeight()
	if len(m.activityLines) > 0 {
		m.activity.SetContent(m.renderActivityLines(m.activityLines))
	}
	m.help.Width = maxInt(m.width-2, 0)
	m.search.Width = maxInt(minInt(m.width/3, 40), 12)
	m.refreshBody()
}

func (m Model) bodyHeight() int {
	return maxInt(m.height-headerLines-footerLines, 1)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
