package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/charon/internal/models"
	"github.com/jask/charon/internal/state"
)

const (
	appName      = "CHARON"
	defaultWidth = 80
	// chrome is header + status + footer.
	chrome = 3
)

func (m *Model) View() string {
	header := renderHeader(m.app.CurrentScreen, m.width)
	status := m.renderStatus()
	footer := m.renderFooter()

	var body string
	switch {
	case m.app.ShowHelp:
		body = m.placeModal(modalStyle.Render(m.renderHelp()))
	case m.app.ShowActionMenu:
		body = m.placeModal(dangerModalStyle.Render(m.renderActionMenu()))
	default:
		body = m.renderScreen()
	}
	return m.placeWithFooter(header+"\n"+body, status, footer)
}

func (m *Model) renderScreen() string {
	switch m.app.CurrentScreen {
	case state.ScreenDashboard:
		return m.renderSection("GHOSTS", m.renderDashboard())
	case state.ScreenTerminal:
		return m.renderSection(m.terminalTitle(), m.renderTerminal())
	case state.ScreenConfig:
		return m.renderSection("GHOST CONFIG", m.renderConfig())
	case state.ScreenBuilder:
		return m.renderSection("PAYLOAD BUILDER", m.renderBuilder())
	default:
		return ""
	}
}

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func renderHeader(active state.Screen, width int) string {
	name := headerAppStyle.Render(appName)

	tabs := make([]string, 0, len(state.Screens))
	for _, s := range state.Screens {
		if s == active {
			tabs = append(tabs, activeTabStyle.Render(s.String()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(s.String()))
		}
	}
	line := name + "  " + tabSepStyle.Render(" ") + strings.Join(tabs, tabSepStyle.Render("│"))
	if width <= 0 {
		return headerBarStyle.Render(line)
	}
	return headerBarStyle.Width(width).Render(line)
}

func (m *Model) renderStatus() string {
	text := strings.ReplaceAll(m.app.StatusMessage, "\n", " ")
	style := statusBarStyle
	if isErrorStatus(text) {
		style = statusErrorStyle
	}
	if m.width <= 0 {
		return style.Render(text)
	}
	return style.Width(m.width).Render(text)
}

func isErrorStatus(s string) bool {
	return strings.HasPrefix(s, "Error")
}

func (m *Model) renderFooter() string {
	content := m.help.ShortHelpView(screenHelp{keys: m.keys, screen: m.app.CurrentScreen}.ShortHelp())
	if m.width <= 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(m.width).Render(content)
}

func (m *Model) contentWidth() int {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}
	// border and padding on both sides
	if w -= 4; w < 20 {
		w = 20
	}
	return w
}

// bodyHeight is how many content lines a section can show, or 0 when the
// terminal size is not known yet.
func (m *Model) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	// header, section title and rule, section borders
	h := m.height - chrome - 4
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) renderSection(title, content string) string {
	w := m.contentWidth()
	header := padRight(titleStyle.Render(truncate(title, w)), w)
	rule := helpSepStyle.Render(strings.Repeat("─", w))
	return listBoxStyle.Width(w + 2).Render(header + "\n" + rule + "\n" + content)
}

func (m *Model) placeWithFooter(body, status, footer string) string {
	if m.height <= 0 {
		return body + "\n" + status + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + status + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	return main + "\n" + status + "\n" + footer
}

func (m *Model) placeModal(modal string) string {
	if m.width <= 0 || m.height <= 0 {
		return modal
	}
	return lipgloss.Place(m.width, max(1, m.height-chrome), lipgloss.Center, lipgloss.Center, modal)
}

func (m *Model) renderHelp() string {
	h := m.help
	h.ShowAll = true
	body := h.FullHelpView(screenHelp{keys: m.keys, screen: m.app.CurrentScreen}.FullHelp())
	return titleStyle.Render("KEYS") + "\n\n" + body + "\n\n" + mutedStyle.Render("esc or h to close")
}

func (m *Model) renderActionMenu() string {
	id := m.app.Dashboard.SelectedID()
	lines := []string{
		titleStyle.Render("ACTIONS :: " + id),
		"",
		cursorStyle.Render("> ") + deadStyle.Render("KILL SWITCH"),
		"",
		mutedStyle.Render("enter confirm · esc cancel"),
	}
	return strings.Join(lines, "\n")
}

// ---------------------------------------------------------------------------
// Dashboard
// ---------------------------------------------------------------------------

const (
	colID     = 12
	colHost   = 18
	colOS     = 10
	colStatus = 8
)

func (m *Model) renderDashboard() string {
	d := m.app.Dashboard
	if len(d.Ghosts) == 0 {
		return mutedStyle.Render("No ghosts connected. Press r to refresh.")
	}

	header := fmt.Sprintf("  %-*s  %-*s  %-*s  %-*s  %s",
		colID, "ID", colHost, "HOSTNAME", colOS, "OS", colStatus, "STATUS", "LAST SEEN")
	lines := []string{tableHeaderStyle.Render(header)}

	cursor := -1
	if d.Cursor != nil {
		cursor = *d.Cursor
	}
	start, end := window(cursor, len(d.Ghosts), m.bodyHeight()-1)
	now := m.now()
	for i := start; i < end; i++ {
		lines = append(lines, m.renderGhostRow(d.Ghosts[i], i == cursor, now))
	}
	if start > 0 || end < len(d.Ghosts) {
		lines = append(lines, scrollStyle.Render(fmt.Sprintf("── showing %d-%d of %d ──", start+1, end, len(d.Ghosts))))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderGhostRow(g models.Ghost, selected bool, now time.Time) string {
	liveness := deadStyle.Render(padRight("DEAD", colStatus))
	if g.IsActive(now, m.cfg.LivenessTimeout) {
		liveness = activeStyle.Render(padRight("ACTIVE", colStatus))
	}
	prefix := "  "
	if selected {
		prefix = cursorStyle.Render("> ")
	}
	row := prefix +
		padRight(truncate(g.ID, colID), colID) + "  " +
		padRight(truncate(g.Hostname, colHost), colHost) + "  " +
		padRight(truncate(g.OS, colOS), colOS) + "  " +
		liveness + "  " +
		mutedStyle.Render(formatAgo(g.SeenAgo(now)))
	return row
}

func formatAgo(d time.Duration) string {
	return fmt.Sprintf("%ds ago", int64(d/time.Second))
}

// ---------------------------------------------------------------------------
// Terminal
// ---------------------------------------------------------------------------

// promptHost names the active ghost for the prompt. A ghost that dropped out
// of the roster keeps its id.
func (m *Model) promptHost() string {
	if g, ok := m.app.ActiveGhost(); ok {
		return g.Hostname
	}
	return m.app.ActiveGhostID()
}

func (m *Model) terminalTitle() string {
	id := m.app.ActiveGhostID()
	if id == "" {
		return "TERMINAL"
	}
	if _, ok := m.app.ActiveGhost(); !ok {
		return fmt.Sprintf("TERMINAL :: %s (offline)", id)
	}
	return fmt.Sprintf("TERMINAL :: %s (%s)", m.promptHost(), id)
}

func (m *Model) renderTerminal() string {
	t := m.app.Terminal
	if m.app.ActiveGhostID() == "" {
		return mutedStyle.Render("No active ghost. Pick one on the dashboard and press enter.")
	}

	prompt := promptStyle.Render(fmt.Sprintf("ghost@%s>", m.promptHost()))
	var lines []string
	if len(t.Tasks) == 0 {
		lines = append(lines, mutedStyle.Render("No tasks yet."))
	} else {
		cursor := -1
		if t.Cursor != nil {
			cursor = *t.Cursor
		}
		// two lines per task plus the input line
		start, end := window(cursor, len(t.Tasks), (m.bodyHeight()-2)/2)
		if start > 0 {
			lines = append(lines, scrollStyle.Render(fmt.Sprintf("── %d earlier ──", start)))
		}
		for i := start; i < end; i++ {
			lines = append(lines, renderTask(t.Tasks[i], prompt, i == cursor)...)
		}
	}

	lines = append(lines, "", prompt+" "+t.InputBuffer+cursorStyle.Render("█"))
	return strings.Join(lines, "\n")
}

func renderTask(task models.Task, prompt string, selected bool) []string {
	marker := "  "
	if selected {
		marker = cursorStyle.Render("> ")
	}
	cmdLine := strings.TrimSpace(task.Command + " " + task.Args)
	head := marker + prompt + " " + cmdLine + "  " + statusTag(task.Status)

	if !task.Status.Settled() {
		return []string{head, "    " + pendingStyle.Render("[PENDING...]")}
	}
	if task.Result == nil || strings.TrimSpace(*task.Result) == "" {
		return []string{head, "    " + mutedStyle.Render("(no output)")}
	}
	out := []string{head}
	for _, l := range strings.Split(strings.TrimRight(*task.Result, "\n"), "\n") {
		out = append(out, "    "+l)
	}
	return out
}

func statusTag(s models.TaskStatus) string {
	tag := "[" + s.String() + "]"
	switch s {
	case models.TaskSuccess:
		return activeStyle.Render(tag)
	case models.TaskFailed:
		return deadStyle.Render(tag)
	case models.TaskUnknown:
		return mutedStyle.Render(tag)
	default:
		return pendingStyle.Render(tag)
	}
}

// ---------------------------------------------------------------------------
// Config
// ---------------------------------------------------------------------------

func (m *Model) renderConfig() string {
	c := m.app.Config
	var target string
	if g, ok := m.app.Dashboard.Selected(); ok {
		target = labelStyle.Render("Target  ") + valueStyle.Render(fmt.Sprintf("%s (%s)", g.ID, g.Hostname))
	} else {
		target = mutedStyle.Render("No ghost selected on the dashboard.")
	}

	lines := []string{
		target,
		"",
		formRow("Sleep interval (s)", c.SleepInput, c.SelectedField == state.ConfigSleep, true),
		formRow("Jitter (%)", c.JitterInput, c.SelectedField == state.ConfigJitter, true),
		"",
		submitRow("[ SUBMIT ]", c.SelectedField == state.ConfigSubmit),
	}
	return strings.Join(lines, "\n")
}

const labelWidth = 22

func formRow(label, value string, focused, text bool) string {
	prefix := "  "
	l := labelStyle.Render(padRight(label, labelWidth))
	if focused {
		prefix = cursorStyle.Render("> ")
		l = focusStyle.Render(padRight(label, labelWidth))
	}
	v := valueStyle.Render(value)
	if text {
		v = valueStyle.Render("[" + value + "]")
		if focused {
			v = valueStyle.Render("["+value) + cursorStyle.Render("█") + valueStyle.Render("]")
		}
	}
	return prefix + l + v
}

func submitRow(label string, focused bool) string {
	if focused {
		return cursorStyle.Render("> ") + focusStyle.Render(label)
	}
	return "  " + labelStyle.Render(label)
}

// ---------------------------------------------------------------------------
// Builder
// ---------------------------------------------------------------------------

func (m *Model) renderBuilder() string {
	b := &m.app.Builder

	tabs := make([]string, 0, len(state.Categories))
	for _, c := range state.Categories {
		if c == b.ActiveCategory {
			tabs = append(tabs, activeTabStyle.Render(c.String()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(c.String()))
		}
	}
	prefix := "  "
	if b.SelectedField == state.FieldCategorySelect {
		prefix = cursorStyle.Render("> ")
	}
	lines := []string{prefix + strings.Join(tabs, " "), ""}

	for _, f := range b.VisibleFields() {
		focused := f == b.SelectedField
		switch {
		case f == state.FieldCategorySelect:
			continue
		case f == state.FieldSubmit:
			if !b.CategoryEnabled(b.ActiveCategory) {
				lines = append(lines, mutedStyle.Render("  category disabled, press t to enable"))
			}
			lines = append(lines, "", submitRow("[ BUILD PAYLOAD ]", focused))
		case f.IsText():
			lines = append(lines, formRow(f.String(), fieldText(b, f), focused, true))
		default:
			on, _ := b.Flag(f)
			lines = append(lines, formRow(f.String(), checkbox(on), focused, false))
		}
	}

	lines = append(lines, "", labelStyle.Render("Build status  ")+buildStatus(b.BuildStatusMsg))
	return strings.Join(lines, "\n")
}

func fieldText(b *state.BuilderState, f state.BuilderField) string {
	if f == state.FieldURL {
		return b.TargetURL
	}
	return b.TargetPort
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func buildStatus(s string) string {
	switch s {
	case state.BuildSucceeded:
		return activeStyle.Render(s)
	case state.BuildFailed:
		return deadStyle.Render(s)
	case state.BuildRunning:
		return pendingStyle.Render(s)
	default:
		return mutedStyle.Render(s)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// window returns the [start, end) slice of n rows that keeps cursor visible
// in at most size rows. A size below one shows everything.
func window(cursor, n, size int) (int, int) {
	if size < 1 || n <= size {
		return 0, n
	}
	if cursor < 0 {
		cursor = n - 1
	}
	start := cursor - size + 1
	if start < 0 {
		start = 0
	}
	end := start + size
	if end > n {
		end = n
		start = n - size
	}
	return start, end
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
