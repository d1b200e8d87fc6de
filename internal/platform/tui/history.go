package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsim/internal/storage"
)

// maxRecentStrokes caps the rows loaded for the recent view.
const maxRecentStrokes = 200

// HistorySource is the journal queried by the history view.
// *storage.Store implements it.
type HistorySource interface {
	ToolSummaries() ([]storage.ToolSummary, error)
	RecentStrokes(limit int) ([]storage.StrokeEntry, error)
}

// historyTab selects which journal view is shown.
type historyTab int

const (
	tabTools historyTab = iota
	tabRecent
)

// HistoryKeyMap defines the key bindings for the history view.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Tab  key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Tab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Tab, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "tools/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing the edit journal.
type HistoryModel struct {
	source   HistorySource
	tab      historyTab
	tools    []storage.ToolSummary
	recent   []storage.StrokeEntry
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history view and loads the journal.
func NewHistoryModel(source HistorySource, width, height int) HistoryModel {
	m := HistoryModel{
		source: source,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *HistoryModel) load() {
	if m.source == nil {
		return
	}
	tools, err := m.source.ToolSummaries()
	if err != nil {
		m.loadErr = err
		return
	}
	recent, err := m.source.RecentStrokes(maxRecentStrokes)
	if err != nil {
		m.loadErr = err
		return
	}
	m.tools, m.recent = tools, recent
}

// createTable builds a table with columns for the current tab.
func (m *HistoryModel) createTable() table.Model {
	var columns []table.Column
	switch m.tab {
	case tabTools:
		columns = []table.Column{
			{Title: "Tool", Width: 16},
			{Title: "Strokes", Width: 8},
			{Title: "Touched", Width: 9},
			{Title: "Changed", Width: 9},
			{Title: "Last used", Width: 14},
		}
	case tabRecent:
		columns = []table.Column{
			{Title: "When", Width: 14},
			{Title: "Session", Width: 18},
			{Title: "Tool", Width: 14},
			{Title: "Shape", Width: 10},
			{Title: "Changed", Width: 9},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // leave room for title and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded journal.
func (m *HistoryModel) updateTableRows() {
	var rows []table.Row
	switch m.tab {
	case tabTools:
		rows = make([]table.Row, len(m.tools))
		for i, ts := range m.tools {
			rows[i] = table.Row{
				ts.Tool,
				fmt.Sprintf("%d", ts.Strokes),
				fmt.Sprintf("%d", ts.Touched),
				fmt.Sprintf("%d", ts.Changed),
				ts.LastUsed.Format("Jan 02 15:04"),
			}
		}
	case tabRecent:
		rows = make([]table.Row, len(m.recent))
		for i, e := range m.recent {
			rows[i] = table.Row{
				e.CreatedAt.Format("Jan 02 15:04"),
				e.SessionID,
				e.Tool,
				e.Shape,
				fmt.Sprintf("%d/%d", e.Changed, e.Touched),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			m.tab = (m.tab + 1) % 2
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history view.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	title := "EDIT HISTORY - TOOLS"
	if m.tab == tabRecent {
		title = "EDIT HISTORY - RECENT STROKES"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTableContent renders the table or a placeholder.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Cannot read the journal:\n" + m.loadErr.Error())
	case len(m.tools) == 0:
		return emptyStyle.Render("No strokes recorded yet.\nRun gridsim edit and draw something!")
	}
	return m.table.View()
}

// RunHistory runs the interactive history view.
func RunHistory(source HistorySource, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(source, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
