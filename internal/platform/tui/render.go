package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flapper/internal/config"
	"github.com/vovakirdan/tui-flapper/internal/core"
)

// Palette maps screen color roles to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds styles from the configured RGB colors. Every role is
// drawn on the background color so the play field is one solid area.
func NewPalette(c config.Palette) Palette {
	bg := lipgloss.Color(c.Background.Hex())
	on := func(fg config.RGB) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(fg.Hex())).Background(bg)
	}
	return Palette{
		core.ColorDefault:    lipgloss.NewStyle(),
		core.ColorBackground: lipgloss.NewStyle().Background(bg),
		core.ColorPlayer:     on(c.Player),
		core.ColorWall:       on(c.Wall),
		core.ColorEnemy:      on(c.Enemy),
		core.ColorText:       on(c.Text).Bold(true),
		core.ColorAccent:     on(c.Player).Bold(true),
	}
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[color]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
