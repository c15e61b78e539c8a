package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tenure-rush/internal/clock"
	"github.com/vovakirdan/tenure-rush/internal/game"
	"github.com/vovakirdan/tenure-rush/internal/storage"
)

const maxRuns = 100 // Max runs to load per view

// RunSource provides the run history shown on the board.
type RunSource interface {
	BestTime(key string) (time.Duration, bool, error)
	RecentRuns(limit int) ([]storage.Run, error)
	FastestWins(limit int) ([]storage.Run, error)
}

// BoardView selects which runs the board lists.
type BoardView int

const (
	ViewRecent BoardView = iota
	ViewFastest
)

func (v BoardView) String() string {
	if v == ViewFastest {
		return "Fastest Wins"
	}
	return "Recent Runs"
}

// BoardKeyMap defines the key bindings for the run board.
type BoardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Switch, k.Quit},
	}
}

// DefaultBoardKeyMap returns default key bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "recent/fastest"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BoardModel is the Bubble Tea model for the run history screen.
type BoardModel struct {
	source   RunSource
	view     BoardView
	runs     []storage.Run
	best     time.Duration
	hasBest  bool
	loadErr  error
	table    table.Model
	help     help.Model
	keys     BoardKeyMap
	width    int
	height   int
	quitting bool
}

// NewBoardModel creates a new run board model.
func NewBoardModel(source RunSource, width, height int) BoardModel {
	h := help.New()
	h.ShowAll = false

	m := BoardModel{
		source: source,
		keys:   DefaultBoardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *BoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Result", Width: 7},
		{Title: "Time", Width: 9},
		{Title: "Tenure", Width: 7},
		{Title: "Hearts", Width: 7},
		{Title: "Lv", Width: 3},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

// load reads the best time and the runs for the current view.
func (m *BoardModel) load() {
	m.runs, m.loadErr = nil, nil
	if m.source == nil {
		m.updateTableRows()
		return
	}

	best, ok, err := m.source.BestTime(game.BestTimeKey)
	if err != nil {
		m.loadErr = err
	}
	m.best, m.hasBest = best, ok

	var runs []storage.Run
	if m.view == ViewFastest {
		runs, err = m.source.FastestWins(maxRuns)
	} else {
		runs, err = m.source.RecentRuns(maxRuns)
	}
	if err != nil {
		m.loadErr = err
	} else {
		m.runs = runs
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *BoardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.Outcome,
			clock.Format(r.Elapsed),
			fmt.Sprintf("%d%%", r.Tenure),
			fmt.Sprintf("%d", r.Hearts),
			fmt.Sprintf("%d", r.Level),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the board model.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the board.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			m.view = (m.view + 1) % 2
			m.load()
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

// View renders the board.
func (m BoardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := fmt.Sprintf("TENURE RUSH - %s - Best %s", m.view, clock.FormatBest(m.best, m.hasBest))
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m BoardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render("Could not load runs: " + m.loadErr.Error())
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No runs recorded yet.\nReach 100% tenure to set a time!")
	}
	return m.table.View()
}

// Runs returns the runs currently listed.
func (m BoardModel) Runs() []storage.Run {
	return m.runs
}

// CurrentView returns the active list.
func (m BoardModel) CurrentView() BoardView {
	return m.view
}

// IsQuitting returns true if user wants to quit.
func (m BoardModel) IsQuitting() bool {
	return m.quitting
}

func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunBoard runs the run history screen.
func RunBoard(source RunSource, width, height int) error {
	p := tea.NewProgram(
		NewBoardModel(source, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
