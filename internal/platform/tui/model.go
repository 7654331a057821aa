package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flapper/internal/config"
	"github.com/vovakirdan/tui-flapper/internal/core"
	"github.com/vovakirdan/tui-flapper/internal/storage"
)

// Game is the simulation driven by the model.
type Game interface {
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Title() string
}

// Sounds plays the events emitted by a step.
type Sounds interface {
	PlayAll(events []core.Event)
	ToggleMute() bool
}

// RunRecorder stores finished runs.
type RunRecorder interface {
	SaveRun(r storage.RunRecord) (int64, error)
}

// Options configures a Model. Only Game is required.
type Options struct {
	Game          Game
	Palette       Palette // nil uses the default colors
	FPS           int
	Width, Height int
	Sounds        Sounds      // nil plays nothing
	Runs          RunRecorder // nil keeps no history
	Logger        *log.Logger // nil discards
	ScreenshotDir string      // empty uses ~/.flapper/screenshots
	NoScreenshots bool
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game          Game
	screen        *core.Screen
	palette       Palette
	keys          KeyMap
	fps           int
	sounds        Sounds
	runs          RunRecorder
	logger        *log.Logger
	screenshotDir string
	noScreenshots bool
	inputFrame    core.InputFrame
	gameState     core.GameState
	quitting      bool
	runSaved      bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	palette := opts.Palette
	if palette == nil {
		palette = NewPalette(config.DefaultConfig().Colors)
	}

	return Model{
		game:          opts.Game,
		screen:        core.NewScreen(opts.Width, opts.Height),
		palette:       palette,
		keys:          DefaultKeyMap(),
		fps:           opts.FPS,
		sounds:        opts.Sounds,
		runs:          opts.Runs,
		logger:        logger,
		screenshotDir: opts.ScreenshotDir,
		noScreenshots: opts.NoScreenshots,
		inputFrame:    core.NewInputFrame(),
		gameState:     opts.Game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if MouseAction(msg) == core.ActionActivate {
			m.inputFrame.Set(core.ActionActivate)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The world is scaled to the screen, so a resize never resets the run.
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if m.noScreenshots {
			return m, nil
		}
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionMute:
		if m.sounds != nil {
			muted := m.sounds.ToggleMute()
			m.logger.Debug("sound toggled", "muted", muted)
		}
	case core.ActionActivate:
		m.inputFrame.Set(core.ActionActivate)
	}

	return m, nil
}

// handleTick runs one simulation step with the input gathered since the
// previous tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.sounds != nil && len(result.Events) > 0 {
		m.sounds.PlayAll(result.Events)
	}

	if m.gameState.Playing {
		m.runSaved = false
	}
	if m.gameState.GameOver && !m.runSaved {
		m.recordRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.fps)
}

// recordRun stores the finished run. Empty runs are not recorded.
func (m Model) recordRun() {
	st := m.gameState
	m.logger.Info("run finished", "score", st.Score, "best", st.Best, "level", st.Level, "ticks", st.Ticks)
	if m.runs == nil || st.Score <= 0 {
		return
	}

	_, err := m.runs.SaveRun(storage.RunRecord{
		Score:          st.Score,
		Level:          st.Level,
		Ticks:          st.Ticks,
		WallsPassed:    st.WallsPassed,
		EnemiesAvoided: st.EnemiesAvoided,
	})
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
	}
}

// saveScreenshot writes the current screen as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot find home directory: %w", err)
		}
		dir = filepath.Join(home, ".flapper", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flapper_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.Render(m.screen)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
