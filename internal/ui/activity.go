package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/five82/glassy/internal/logtail"
)

type activityMsg struct {
	lines []string
	err   error
}

func loadActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return activityMsg{}
		}
		lines, err := logtail.Read(path, activityTailLines)
		return activityMsg{lines: lines, err: err}
	}
}

// openActivity shows the log tail on top of the current view.
func (m *Model) openActivity() tea.Cmd {
	m.activityFrom = m.currentView
	m.currentView = ViewActivity
	m.search.Blur()
	return loadActivityCmd(m.logPath)
}

// closeActivity returns to whichever view opened the log.
func (m *Model) closeActivity() {
	m.currentView = m.activityFrom
}

// handleActivityKey processes keyboard input on the activity log.
func (m Model) handleActivityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		m.activity.SetContent(m.renderActivityLines(m.activityLines))
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Activity):
		m.closeActivity()
	case key.Matches(msg, m.keys.Up):
		m.activity.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.activity.ScrollDown(1)
	case key.Matches(msg, m.keys.ScrollNext):
		m.activity.PageDown()
	case key.Matches(msg, m.keys.ScrollUp):
		m.activity.PageUp()
	case key.Matches(msg, m.keys.Top):
		m.activity.GotoTop()
	}
	return m, nil
}

// applyActivity loads fresh log lines, following the tail only when the
// view was already at the bottom.
func (m *Model) applyActivity(msg activityMsg) {
	m.activityErr = msg.err
	if msg.err != nil {
		m.logger.Warn("read activity log failed", zap.String("path", m.logPath), zap.Error(msg.err))
		return
	}
	follow := m.activity.AtBottom() || m.activity.TotalLineCount() == 0
	m.activityLines = msg.lines
	m.activity.SetContent(m.renderActivityLines(msg.lines))
	if follow {
		m.activity.GotoBottom()
	}
}

// renderActivity renders the activity view body.
func (m Model) renderActivity() string {
	styles := m.theme.Styles()
	switch {
	case m.logPath == "":
		return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("File logging is off. Set [log] file in the config to record activity."))
	case m.activityErr != nil:
		return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
			styles.DangerText.Render("Cannot read "+m.logPath+": "+m.activityErr.Error()))
	case len(m.activityLines) == 0:
		return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No activity recorded yet."))
	}
	return m.activity.View()
}

// renderActivityLines formats raw log lines with the level highlighted.
func (m Model) renderActivityLines(lines []string) string {
	styles := m.theme.Styles()
	width := maxInt(m.width-1, 10)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		entry, ok := logtail.Parse(line)
		if !ok {
			out = append(out, styles.MutedText.Render(ansi.Truncate(line, width, "…")))
			continue
		}
		text := ansi.Truncate(logtail.Format(entry), width, "…")
		lead := 1
		if !entry.Time.IsZero() {
			lead = 2
		}
		parts := strings.SplitN(text, " ", lead+1)
		var b strings.Builder
		if lead == 2 && len(parts) > 0 {
			b.WriteString(styles.FaintText.Render(parts[0]))
			b.WriteString(" ")
			parts = parts[1:]
		}
		if len(parts) > 0 {
			b.WriteString(levelStyle(styles, parts[0]).Render(parts[0]))
		}
		if len(parts) > 1 {
			b.WriteString(" ")
			b.WriteString(styles.Text.Render(parts[1]))
		}
		out = append(out, b.String())
	}
	return strings.Join(out, "\n")
}

func levelStyle(styles Styles, level string) lipgloss.Style {
	switch strings.ToUpper(level) {
	case "ERROR", "DPANIC", "PANIC", "FATAL":
		return styles.DangerText.Bold(true)
	case "WARN":
		return styles.WarningText.Bold(true)
	case "DEBUG":
		return styles.InfoText
	default:
		return styles.SuccessText.Bold(true)
	}
}
