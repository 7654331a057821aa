// Package tui runs the game in a terminal: the Bubble Tea loop, input
// mapping, colored rendering, the score table and the SSH front-end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next frame. One tick runs at most one Step, which
// makes the tick rate the frame-rate governor.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
