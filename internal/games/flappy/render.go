package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flapper/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '●'
	PlayerBeak    = '▶'
	WallChar      = '█'
	WallCapTop    = '▄'
	WallCapBottom = '▀'
	EnemyChar     = '◆'
)

// Render draws the current frame into dst, scaling world units to cells.
func (s *Session) Render(dst *core.Screen) {
	RenderFrame(dst, s.Snapshot(), s.Title())
}

// RenderFrame draws a frame snapshot. Split from Render so that any frame
// source can be drawn.
func RenderFrame(dst *core.Screen, f Frame, title string) {
	dst.Fill(' ', core.ColorBackground)
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	switch f.Phase {
	case PhaseStartScreen:
		drawStartScreen(dst, f, title)
	case PhasePlaying:
		drawField(dst, f)
		drawHUD(dst, f)
	case PhaseGameOver:
		drawField(dst, f)
		drawCenteredMessage(dst,
			"Game Over!",
			fmt.Sprintf("Final Score: %d", f.Score),
			fmt.Sprintf("High Score: %d", f.Best),
			"Press SPACE or Click to Restart",
		)
	}
}

// toCells converts a world rectangle to the cells it covers.
// Non-empty rectangles always cover at least one cell.
func toCells(dst *core.Screen, f Frame, r core.FRect) core.Rect {
	sx := float64(dst.Width()) / f.WorldW
	sy := float64(dst.Height()) / f.WorldH

	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := int(math.Ceil(r.Right() * sx))
	y1 := int(math.Ceil(r.Bottom() * sy))
	if !r.Empty() {
		x1 = core.Max(x1, x0+1)
		y1 = core.Max(y1, y0+1)
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func drawField(dst *core.Screen, f Frame) {
	for _, w := range f.Walls {
		top := toCells(dst, f, w.Top)
		dst.DrawRect(top, WallChar, core.ColorWall)
		if top.H > 0 {
			dst.DrawHLine(top.X, top.Bottom()-1, top.W, WallCapTop, core.ColorWall)
		}
		if !w.Bottom.Empty() {
			bottom := toCells(dst, f, w.Bottom)
			dst.DrawRect(bottom, WallChar, core.ColorWall)
			dst.DrawHLine(bottom.X, bottom.Y, bottom.W, WallCapBottom, core.ColorWall)
		}
	}

	for _, e := range f.Enemies {
		dst.DrawRect(toCells(dst, f, e), EnemyChar, core.ColorEnemy)
	}

	p := toCells(dst, f, f.Player)
	dst.DrawRect(p, PlayerChar, core.ColorPlayer)
	dst.SetColored(p.Right()-1, p.Y, PlayerBeak, core.ColorPlayer)
}

func drawHUD(dst *core.Screen, f Frame) {
	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d ", f.Score))
	dst.DrawText(1, 1, fmt.Sprintf(" Level: %s ", f.Level))
	best := fmt.Sprintf(" Best: %d ", f.Best)
	dst.DrawText(dst.Width()-len(best)-1, 0, best)
}

func drawStartScreen(dst *core.Screen, f Frame, title string) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-3, title)
	dst.DrawTextCentered(mid-1, "Press SPACE or Click to Start")
	dst.DrawTextCentered(mid+1, fmt.Sprintf("High Score: %d", f.Best))
	dst.DrawTextCentered(mid+2, fmt.Sprintf("Level: %s", f.Level))
	dst.DrawTextCentered(dst.Height()-1, "Q to quit  ·  M to mute")
}

// drawCenteredMessage draws a framed message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorBackground)
	dst.DrawBox(box, core.ColorText)
	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawText(x, box.Y+1+i, l)
	}
}
