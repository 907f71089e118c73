package cli

import (
	"strings"

	"github.com/alexanderramin/kbtrack/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI. It owns three tabs and
// a stack of overlays (forms) drawn over the active tab.
type appModel struct {
	state    *SharedState
	tabs     []View
	active   int
	overlays []View
	quitting bool

	// Transient output shown above the status bar until the next key.
	lastOutput string
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	return appModel{
		state: state,
		tabs: []View{
			newCurrentView(state),
			newHistoryView(state),
			newStatsView(state),
		},
	}
}

// activeView returns the top overlay, or the selected tab.
func (m *appModel) activeView() View {
	if n := len(m.overlays); n > 0 {
		return m.overlays[n-1]
	}
	return m.tabs[m.active]
}

func (m *appModel) setActiveView(v View) {
	if n := len(m.overlays); n > 0 {
		m.overlays[n-1] = v
		return
	}
	m.tabs[m.active] = v
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, v := range m.tabs {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.lastOutput = ""
		m.overlays = append(m.overlays, msg.view)
		return m, msg.view.Init()

	case formDoneMsg:
		if n := len(m.overlays); n > 0 {
			m.overlays = m.overlays[:n-1]
		}
		return m, tea.Batch(msg.nextCmd, refreshViews())

	case refreshViewMsg:
		return m, m.broadcast(msg)

	case cmdOutputMsg:
		m.lastOutput = msg.output
		return m, nil
	}

	updated, cmd := m.activeView().Update(msg)
	m.setActiveView(updated.(View))
	return m, cmd
}

// broadcast sends msg to every tab and overlay.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, v := range m.tabs {
		updated, cmd := v.Update(msg)
		m.tabs[i] = updated.(View)
		cmds = append(cmds, cmd)
	}
	for i, v := range m.overlays {
		updated, cmd := v.Update(msg)
		m.overlays[i] = updated.(View)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	m.lastOutput = ""

	// Overlays and views editing text receive every key.
	v := m.activeView()
	if len(m.overlays) > 0 || viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		m.active = (m.active + 1) % len(m.tabs)
		return m, nil
	case "shift+tab":
		m.active = (m.active + len(m.tabs) - 1) % len(m.tabs)
		return m, nil
	case "1", "2", "3":
		if i := int(msg.String()[0] - '1'); i < len(m.tabs) {
			m.active = i
		}
		return m, nil
	}

	updated, cmd := v.Update(msg)
	m.setActiveView(updated.(View))
	return m, cmd
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader(), m.activeView().View()}
	if m.lastOutput != "" {
		sections = append(sections, m.lastOutput)
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("kbtrack")

	tabs := make([]string, 0, len(m.tabs))
	for i, v := range m.tabs {
		label := v.Title()
		if i == m.active {
			tabs = append(tabs, formatter.StyleHeader.Render("["+label+"]"))
		} else {
			tabs = append(tabs, formatter.Dim(" "+label+" "))
		}
	}
	header := title + "  " + strings.Join(tabs, " ")

	if n := len(m.overlays); n > 0 {
		header += " " + formatter.Dim("› "+m.overlays[n-1].Title())
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.activeView().ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	if len(m.overlays) == 0 && !viewCapturesInput(m.activeView()) {
		hints = append(hints, formatter.Dim("tab/1-3: switch"), formatter.Dim("q: quit"))
	}

	bar := strings.Join(hints, "  ")
	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// viewCapturesInput returns true if the view is editing text and should
// receive all key events, bypassing global keys like q and the tab keys.
func viewCapturesInput(v View) bool {
	c, ok := v.(inputCapturer)
	return ok && c.CapturesInput()
}
