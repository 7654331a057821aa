// Package config provides YAML-based game configuration loading, validation
// and level management for the flapper game.
package config

import "fmt"

// Config is the complete, immutable game configuration.
// It is loaded once before the game loop starts.
type Config struct {
	Game        GameSettings      `yaml:"game"`
	Player      PlayerSettings    `yaml:"player"`
	Walls       WallSettings      `yaml:"walls"`
	Enemies     EnemySettings     `yaml:"enemies"`
	Levels      []Level           `yaml:"levels"`
	Progression ProgressionConfig `yaml:"progression"`
	Scoring     ScoringSettings   `yaml:"scoring"`
	Colors      Palette           `yaml:"colors"`
	Audio       AudioSettings     `yaml:"audio"`
}

// GameSettings defines the play field and frame rate.
// Window dimensions are world units; the renderer scales them to the terminal.
type GameSettings struct {
	Title        string `yaml:"title"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	FPS          int    `yaml:"fps"`
}

// PlayerSettings defines player physics and spawn position.
type PlayerSettings struct {
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"` // negative = up
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	Size         float64 `yaml:"size"`
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
}

// WallSettings defines the gap obstacles.
type WallSettings struct {
	Width         float64 `yaml:"width"`
	GapSize       int     `yaml:"gap_size"`
	MinMargin     int     `yaml:"min_margin"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval int     `yaml:"spawn_interval"` // ticks between walls
}

// EnemySettings defines the pursuing enemies.
type EnemySettings struct {
	Size             float64 `yaml:"size"`
	MaxCount         int     `yaml:"max_count"`
	SpawnDistance    int     `yaml:"spawn_distance"` // ticks before a spawn may happen
	JitterEvery      int     `yaml:"jitter_every"`
	JitterRange      int     `yaml:"jitter_range"`
	ClampToPlayfield bool    `yaml:"clamp_to_playfield"`
}

// Level defines enemy behaviour for one difficulty level.
type Level struct {
	Name           string  `yaml:"name"`
	EnemySpeed     float64 `yaml:"enemy_speed"`
	EnemySpawnRate float64 `yaml:"enemy_spawn_rate"` // probability per eligible tick
}

// ProgressionConfig defines how the level advances during a run.
type ProgressionConfig struct {
	Enabled        bool `yaml:"enabled"`
	PointsPerLevel int  `yaml:"points_per_level"`
}

// ScoringSettings defines point awards and the best-score file.
type ScoringSettings struct {
	PointsPerWall         int    `yaml:"points_per_wall"`
	PointsPerEnemyAvoided int    `yaml:"points_per_enemy_avoided"`
	BestScoreFile         string `yaml:"best_score_file"`
}

// AudioSettings controls the synthesized sound effects and background loop.
type AudioSettings struct {
	Enabled     bool    `yaml:"enabled"`
	Volume      float64 `yaml:"volume"` // 0.0 - 1.0
	Music       bool    `yaml:"music"`
	MusicVolume float64 `yaml:"music_volume"` // relative to volume
}

// RGB is a color written as [r, g, b] in YAML.
type RGB [3]int

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// Palette holds the colors for each drawable role.
type Palette struct {
	Background RGB `yaml:"background"`
	Player     RGB `yaml:"player"`
	Wall       RGB `yaml:"wall"`
	Enemy      RGB `yaml:"enemy"`
	Text       RGB `yaml:"text"`
}

// GapRange returns the closed range of valid gap-top values.
// The range is empty (lo > hi) when the window is too short for the gap.
func (c Config) GapRange() (lo, hi int) {
	lo = c.Walls.MinMargin
	hi = c.Game.WindowHeight - c.Walls.MinMargin - c.Walls.GapSize
	return lo, hi
}
