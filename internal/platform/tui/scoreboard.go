package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flapper/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 50  // Below this the Date column is dropped
	maxRuns       = 100 // Max runs to load
)

// HistoryReader reads the run history shown on the scoreboard.
type HistoryReader interface {
	TopRuns(limit int) ([]storage.RunRecord, error)
	Stats() (storage.RunStats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Top  key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Top, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the run history screen.
type ScoreboardModel struct {
	runs     []storage.RunRecord
	stats    storage.RunStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	withDate bool
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard and loads the history.
func NewScoreboardModel(history HistoryReader, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load(history)
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load reads runs and stats. A failure is shown instead of the table.
func (m *ScoreboardModel) load(history HistoryReader) {
	if history == nil {
		return
	}
	runs, err := history.TopRuns(maxRuns)
	if err != nil {
		m.loadErr = err
		return
	}
	stats, err := history.Stats()
	if err != nil {
		m.loadErr = err
		return
	}
	m.runs = runs
	m.stats = stats
}

// createTable creates a table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 10},
		{Title: "Walls", Width: 7},
		{Title: "Enemies", Width: 8},
	}
	m.withDate = m.width >= tableMinWidth+20
	if m.withDate {
		columns = append(columns, table.Column{Title: "Date", Width: 14})
	}

	height := m.height - 9 // Title, stats, borders and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// updateTableRows fills the table from the loaded runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			r.Level,
			fmt.Sprintf("%d", r.WallsPassed),
			fmt.Sprintf("%d", r.EnemiesAvoided),
		}
		if m.withDate {
			row = append(row, r.CreatedAt.Format("Jan 02 15:04"))
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
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

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("FLAPPER HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(boxStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.stats.Runs > 0 {
		b.WriteString(dim.Render(centerText(m.statsLine(), m.width)))
		b.WriteString("\n")
	}
	b.WriteString(dim.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the whole history in one line.
func (m ScoreboardModel) statsLine() string {
	return fmt.Sprintf("%d runs · best %d · avg %.1f · %d walls · %d enemies dodged",
		m.stats.Runs, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalWalls, m.stats.TotalEnemies)
}

// renderTableContent renders the table, an error or the empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render("Could not read the run history:\n" + m.loadErr.Error())
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No runs recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// centerText pads s so that it is centered in width columns.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	pad := (width - w) / 2
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.Repeat(" ", pad) + l
	}
	return strings.Join(lines, "\n")
}

// RunScoreboard shows the run history until the user quits.
func RunScoreboard(history HistoryReader, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(history, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
