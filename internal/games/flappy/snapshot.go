package flappy

import "github.com/vovakirdan/tui-flapper/internal/core"

// WallView is the drawable part of a wall.
type WallView struct {
	Top    core.FRect
	Bottom core.FRect
	Passed bool
}

// Frame is everything a renderer needs for one frame, in world units.
// It is a copy; mutating it does not affect the session.
type Frame struct {
	Phase   Phase
	WorldW  float64
	WorldH  float64
	Player  core.FRect
	Walls   []WallView
	Enemies []core.FRect
	Score   int
	Best    int
	Level   string
	Tick    int
}

// Snapshot returns the current frame.
func (s *Session) Snapshot() Frame {
	f := Frame{
		Phase:   s.phase,
		WorldW:  float64(s.cfg.Game.WindowWidth),
		WorldH:  float64(s.cfg.Game.WindowHeight),
		Player:  s.player.Rect(),
		Walls:   make([]WallView, len(s.walls)),
		Enemies: make([]core.FRect, len(s.enemies)),
		Score:   s.score.Score(),
		Best:    s.score.Best(),
		Level:   s.currentLevel().Name,
		Tick:    s.ticks,
	}
	for i, w := range s.walls {
		f.Walls[i] = WallView{Top: w.TopRect(), Bottom: w.BottomRect(), Passed: w.Passed}
	}
	for i, e := range s.enemies {
		f.Enemies[i] = e.Rect()
	}
	return f
}
