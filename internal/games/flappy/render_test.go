package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flapper/internal/config"
	"github.com/vovakirdan/tui-flapper/internal/core"
)

func TestRenderStartScreen(t *testing.T) {
	s, _ := newTestSession(t, config.DefaultConfig())
	scr := core.NewScreen(80, 24)
	s.Render(scr)

	out := scr.String()
	for _, want := range []string{"Flappy Bird Game", "Press SPACE or Click to Start", "High Score: 0", "Level: Easy"} {
		if !strings.Contains(out, want) {
			t.Errorf("start screen missing %q:\n%s", want, out)
		}
	}
	if strings.ContainsRune(out, PlayerChar) {
		t.Error("start screen should not draw the player")
	}
}

func TestRenderPlaying(t *testing.T) {
	cfg := config.DefaultConfig()
	s, _ := startedSession(t)
	s.walls = append(s.walls, NewWall(200, 200, cfg.Walls, cfg.Game.WindowHeight))
	s.enemies = append(s.enemies, NewEnemy(s.rng, 300, 100, 3, cfg.Enemies, cfg.Game.WindowHeight))

	scr := core.NewScreen(80, 24)
	s.Render(scr)
	out := scr.String()

	for _, r := range []rune{PlayerChar, WallChar, EnemyChar} {
		if !strings.ContainsRune(out, r) {
			t.Errorf("play field missing %q:\n%s", r, out)
		}
	}
	if top := scr.Row(0); !strings.HasPrefix(top, "  Score: 0 ") || !strings.HasSuffix(top, " Best: 0  ") {
		t.Errorf("HUD row = %q", top)
	}
	if level := scr.Row(1); !strings.HasPrefix(level, "  Level: Easy ") {
		t.Errorf("level row = %q", level)
	}

	// Player at world (80, 300.5) maps to column 16, row 12 on a 80x24 grid.
	if got := scr.GetCell(16, 12); got.Color != core.ColorPlayer {
		t.Errorf("cell (16,12) = %+v, expected the player", got)
	}
}

func TestRenderGameOver(t *testing.T) {
	s, _ := startedSession(t)
	s.score.Add(7)
	s.player.Y = 2
	s.player.Velocity = -8
	s.Step(core.NewInputFrame())

	scr := core.NewScreen(80, 24)
	s.Render(scr)
	out := scr.String()

	for _, want := range []string{"Game Over!", "Final Score: 7", "High Score: 7", "Press SPACE or Click to Restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q:\n%s", want, out)
		}
	}
}

func TestToCellsScaling(t *testing.T) {
	// 1/8 scale on both axes keeps the arithmetic exact.
	scr := core.NewScreen(50, 75)
	f := Frame{WorldW: 400, WorldH: 600}

	tests := []struct {
		in   core.FRect
		want core.Rect
	}{
		{core.NewFRect(0, 0, 400, 600), core.NewRect(0, 0, 50, 75)},
		{core.NewFRect(80, 300, 30, 30), core.NewRect(10, 37, 4, 5)},
		{core.NewFRect(81, 301, 1, 1), core.NewRect(10, 37, 1, 1)},
		{core.NewFRect(-32, 0, 16, 16), core.NewRect(-4, 0, 2, 2)},
	}
	for _, tc := range tests {
		if got := toCells(scr, f, tc.in); got != tc.want {
			t.Errorf("toCells(%+v) = %+v, expected %+v", tc.in, got, tc.want)
		}
	}
}

func TestRenderTinyScreen(t *testing.T) {
	s, _ := startedSession(t)
	for _, size := range [][2]int{{0, 0}, {1, 1}, {5, 3}} {
		scr := core.NewScreen(size[0], size[1])
		s.Render(scr) // must not panic
	}
}
