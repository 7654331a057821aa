package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flapper/internal/config"
)

// MenuKeyMap defines the key bindings for the level picker.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:       key.NewBinding(key.WithKeys("down", "j", "s")),
		Select:     key.NewBinding(key.WithKeys("enter", " ")),
		Scoreboard: key.NewBinding(key.WithKeys("tab")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	title          string
	levels         []config.Level
	best           int
	cursor         int
	width          int
	height         int
	keys           MenuKeyMap
	quitting       bool
	selected       int  // Chosen level index, -1 until Enter
	openScoreboard bool // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a level picker with the cursor on level start.
func NewMenuModel(cfg config.Config, best, start, width, height int) MenuModel {
	return MenuModel{
		title:    cfg.Game.Title,
		levels:   cfg.Levels,
		best:     best,
		cursor:   max(0, min(start, len(cfg.Levels)-1)),
		width:    width,
		height:   height,
		keys:     DefaultMenuKeyMap(),
		selected: -1,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.levels)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.levels) > 0 {
				m.selected = m.cursor
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Scoreboard):
			m.openScoreboard = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(m.title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("High Score: %d", m.best), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		line := fmt.Sprintf("  %-8s speed %.1f  spawn %2.0f%%", lvl.Name, lvl.EnemySpeed, lvl.EnemySpawnRate*100)
		if i == m.cursor {
			line = active.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render(centerText("Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit", m.width)))
	b.WriteString("\n")

	return b.String()
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Level           int // Index into the configured levels
	Width, Height   int
	WantsScoreboard bool
	Quit            bool
}

// Result reports what the user chose.
func (m MenuModel) Result() MenuResult {
	r := MenuResult{Level: m.selected, Width: m.width, Height: m.height}
	switch {
	case m.openScoreboard:
		r.WantsScoreboard = true
	case m.quitting || m.selected < 0:
		r.Quit = true
	}
	return r
}

// RunMenu runs the level picker and returns the selection.
func RunMenu(cfg config.Config, best, start, width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, best, start, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Width: width, Height: height, Quit: true}, nil
	}
	return m.Result(), nil
}
