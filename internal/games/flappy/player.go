package flappy

import (
	"github.com/vovakirdan/tui-flapper/internal/config"
	"github.com/vovakirdan/tui-flapper/internal/core"
)

// Player is the falling object controlled by the user.
// X never changes after spawn; Y follows velocity every tick.
type Player struct {
	X, Y     float64
	Velocity float64
	Size     float64

	spawnX, spawnY float64
	gravity        float64
	jumpStrength   float64
	maxFallSpeed   float64
}

// NewPlayer creates a player at the configured spawn point with zero velocity.
func NewPlayer(cfg config.PlayerSettings) *Player {
	return &Player{
		X:            cfg.StartX,
		Y:            cfg.StartY,
		Size:         cfg.Size,
		spawnX:       cfg.StartX,
		spawnY:       cfg.StartY,
		gravity:      cfg.Gravity,
		jumpStrength: cfg.JumpStrength,
		maxFallSpeed: cfg.MaxFallSpeed,
	}
}

// Jump replaces the current velocity with the jump impulse.
func (p *Player) Jump() {
	p.Velocity = p.jumpStrength
}

// Update applies gravity, caps the fall speed and moves the player.
func (p *Player) Update() {
	p.Velocity += p.gravity
	if p.Velocity > p.maxFallSpeed {
		p.Velocity = p.maxFallSpeed
	}
	p.Y += p.Velocity
}

// Reset puts the player back at the spawn point with zero velocity.
func (p *Player) Reset() {
	p.X = p.spawnX
	p.Y = p.spawnY
	p.Velocity = 0
}

// Rect returns the player's collision box.
func (p *Player) Rect() core.FRect {
	return core.NewFRect(p.X, p.Y, p.Size, p.Size)
}

// OutOfBounds reports whether the player touched the top or bottom edge.
func (p *Player) OutOfBounds(windowH float64) bool {
	return p.Y <= 0 || p.Y+p.Size >= windowH
}
