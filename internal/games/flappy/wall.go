package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flapper/internal/config"
	"github.com/vovakirdan/tui-flapper/internal/core"
)

// Wall is a pair of blocking segments with a vertical gap between them.
type Wall struct {
	X       float64 // Horizontal position (left edge)
	Width   float64
	GapTop  int     // Y where the gap starts
	GapSize int     // Height of the passable gap
	Passed  bool    // Set once when the player clears the wall
	speed   float64
	windowH int
}

// NewWall creates a wall at x with the given gap top.
func NewWall(x float64, gapTop int, cfg config.WallSettings, windowH int) Wall {
	return Wall{
		X:       x,
		Width:   cfg.Width,
		GapTop:  gapTop,
		GapSize: cfg.GapSize,
		speed:   cfg.Speed,
		windowH: windowH,
	}
}

// TopRect returns the collision box above the gap.
func (w Wall) TopRect() core.FRect {
	return core.NewFRect(w.X, 0, w.Width, float64(w.GapTop))
}

// BottomRect returns the collision box below the gap.
func (w Wall) BottomRect() core.FRect {
	bottomY := w.GapTop + w.GapSize
	return core.NewFRect(w.X, float64(bottomY), w.Width, float64(w.windowH-bottomY))
}

// Update scrolls the wall left by its speed.
func (w *Wall) Update() {
	w.X -= w.speed
}

// OffScreen reports whether the wall has fully left the screen.
func (w Wall) OffScreen() bool {
	return w.X+w.Width < 0
}

// Collides reports whether r overlaps either segment.
func (w Wall) Collides(r core.FRect) bool {
	return w.TopRect().Intersects(r) || w.BottomRect().Intersects(r)
}

// WallGenerator spawns a wall at the right edge every SpawnInterval ticks.
type WallGenerator struct {
	rng     *rand.Rand
	cfg     config.WallSettings
	windowW int
	windowH int
	gapLo   int
	gapHi   int
	timer   int
}

// NewWallGenerator creates a generator for the given configuration.
// The gap range must be non-empty; config.Validate guarantees this.
func NewWallGenerator(rng *rand.Rand, cfg config.Config) *WallGenerator {
	lo, hi := cfg.GapRange()
	return &WallGenerator{
		rng:     rng,
		cfg:     cfg.Walls,
		windowW: cfg.Game.WindowWidth,
		windowH: cfg.Game.WindowHeight,
		gapLo:   lo,
		gapHi:   hi,
	}
}

// Reset zeroes the spawn timer.
func (g *WallGenerator) Reset() {
	g.timer = 0
}

// Tick advances the timer and returns a new wall when the interval elapses.
func (g *WallGenerator) Tick() (Wall, bool) {
	g.timer++
	if g.timer < g.cfg.SpawnInterval {
		return Wall{}, false
	}
	g.timer = 0
	return NewWall(float64(g.windowW), g.GapTop(), g.cfg, g.windowH), true
}

// GapTop draws a gap top uniformly from the closed configured range.
func (g *WallGenerator) GapTop() int {
	return g.gapLo + g.rng.Intn(g.gapHi-g.gapLo+1)
}
