package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flapper/internal/config"
	"github.com/vovakirdan/tui-flapper/internal/core"
)

// passedSpeedFactor slows an enemy once it is no longer right of the player.
const passedSpeedFactor = 0.5

// Enemy flies left toward the player and wobbles vertically.
type Enemy struct {
	X, Y  float64
	Size  float64
	Speed float64

	rng         *rand.Rand
	timer       int
	jitterEvery int
	jitterRange int
	clampMaxY   float64 // 0 means unclamped
}

// NewEnemy creates an enemy at (x, y) moving at speed.
func NewEnemy(rng *rand.Rand, x, y, speed float64, cfg config.EnemySettings, windowH int) Enemy {
	e := Enemy{
		X:           x,
		Y:           y,
		Size:        cfg.Size,
		Speed:       speed,
		rng:         rng,
		jitterEvery: cfg.JitterEvery,
		jitterRange: cfg.JitterRange,
	}
	if cfg.ClampToPlayfield {
		e.clampMaxY = float64(windowH) - cfg.Size
	}
	return e
}

// Update moves the enemy: full speed while right of playerX, half speed after.
// Every jitterEvery updates y shifts by a random integer in [-jitterRange, jitterRange].
func (e *Enemy) Update(playerX float64) {
	if e.X > playerX {
		e.X -= e.Speed
	} else {
		e.X -= e.Speed * passedSpeedFactor
	}

	e.timer++
	if e.jitterEvery > 0 && e.timer%e.jitterEvery == 0 {
		e.Y += float64(e.rng.Intn(2*e.jitterRange+1) - e.jitterRange)
		if e.clampMaxY > 0 {
			e.Y = core.ClampF(e.Y, 0, e.clampMaxY)
		}
	}
}

// Rect returns the enemy's collision box.
func (e Enemy) Rect() core.FRect {
	return core.NewFRect(e.X, e.Y, e.Size, e.Size)
}

// OffScreen reports whether the enemy has fully left the screen on the left.
func (e Enemy) OffScreen() bool {
	return e.X+e.Size < 0
}

// Collides reports whether r overlaps the enemy.
func (e Enemy) Collides(r core.FRect) bool {
	return e.Rect().Intersects(r)
}

// EnemyGenerator spawns enemies once enough ticks have passed, the population
// is below the cap and the level's spawn roll succeeds.
type EnemyGenerator struct {
	rng     *rand.Rand
	cfg     config.EnemySettings
	windowW int
	windowH int
	timer   int
}

// NewEnemyGenerator creates a generator for the given configuration.
func NewEnemyGenerator(rng *rand.Rand, cfg config.Config) *EnemyGenerator {
	return &EnemyGenerator{
		rng:     rng,
		cfg:     cfg.Enemies,
		windowW: cfg.Game.WindowWidth,
		windowH: cfg.Game.WindowHeight,
	}
}

// Reset zeroes the spawn timer.
func (g *EnemyGenerator) Reset() {
	g.timer = 0
}

// Tick advances the timer and may return a new enemy.
// The timer is only reset by a successful spawn, so once the distance is
// reached the probability is re-rolled every tick.
func (g *EnemyGenerator) Tick(active int, level config.Level) (Enemy, bool) {
	g.timer++
	if g.timer < g.cfg.SpawnDistance || active >= g.cfg.MaxCount {
		return Enemy{}, false
	}
	if g.rng.Float64() >= level.EnemySpawnRate {
		return Enemy{}, false
	}

	quarter := g.windowH / 4
	y := quarter + g.rng.Intn(g.windowH-2*quarter+1)
	g.timer = 0
	return NewEnemy(g.rng, float64(g.windowW), float64(y), level.EnemySpeed, g.cfg, g.windowH), true
}
