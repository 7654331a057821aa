package config

import (
	"errors"
	"fmt"
)

// ErrGapGeometry is returned when the wall gap cannot fit in the window.
var ErrGapGeometry = errors.New("wall gap does not fit in window")

// Validate checks that every required field is present and consistent.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Game.WindowWidth > 0, "game.window_width must be positive")
	check(c.Game.WindowHeight > 0, "game.window_height must be positive")
	check(c.Game.FPS > 0, "game.fps must be positive")

	check(c.Player.Gravity > 0, "player.gravity must be positive")
	check(c.Player.JumpStrength < 0, "player.jump_strength must be negative (upward)")
	check(c.Player.MaxFallSpeed > 0, "player.max_fall_speed must be positive")
	check(c.Player.Size > 0, "player.size must be positive")
	check(c.Player.StartY > 0 && c.Player.StartY+c.Player.Size < float64(c.Game.WindowHeight),
		"player.start_y must place the player inside the window")

	check(c.Walls.Width > 0, "walls.width must be positive")
	check(c.Walls.GapSize > 0, "walls.gap_size must be positive")
	check(c.Walls.MinMargin >= 0, "walls.min_margin must not be negative")
	check(c.Walls.Speed > 0, "walls.speed must be positive")
	check(c.Walls.SpawnInterval > 0, "walls.spawn_interval must be positive")
	if lo, hi := c.GapRange(); lo > hi && c.Game.WindowHeight > 0 {
		errs = append(errs, fmt.Errorf("%w: gap top range [%d, %d] is empty", ErrGapGeometry, lo, hi))
	}

	check(c.Enemies.Size > 0, "enemies.size must be positive")
	check(c.Enemies.MaxCount >= 0, "enemies.max_count must not be negative")
	check(c.Enemies.SpawnDistance >= 0, "enemies.spawn_distance must not be negative")
	check(c.Enemies.JitterEvery > 0, "enemies.jitter_every must be positive")
	check(c.Enemies.JitterRange >= 0, "enemies.jitter_range must not be negative")

	check(len(c.Levels) > 0, "levels must contain at least one level")
	for i, lvl := range c.Levels {
		check(lvl.Name != "", "levels[%d].name is required", i)
		check(lvl.EnemySpeed > 0, "levels[%d].enemy_speed must be positive", i)
		check(lvl.EnemySpawnRate >= 0 && lvl.EnemySpawnRate <= 1, "levels[%d].enemy_spawn_rate must be within [0, 1]", i)
	}
	if c.Progression.Enabled {
		check(c.Progression.PointsPerLevel > 0, "progression.points_per_level must be positive when enabled")
	}

	check(c.Scoring.PointsPerWall >= 0, "scoring.points_per_wall must not be negative")
	check(c.Scoring.PointsPerEnemyAvoided >= 0, "scoring.points_per_enemy_avoided must not be negative")
	check(c.Scoring.BestScoreFile != "", "scoring.best_score_file is required")

	for name, rgb := range map[string]RGB{
		"background": c.Colors.Background,
		"player":     c.Colors.Player,
		"wall":       c.Colors.Wall,
		"enemy":      c.Colors.Enemy,
		"text":       c.Colors.Text,
	} {
		for _, v := range rgb {
			if v < 0 || v > 255 {
				errs = append(errs, fmt.Errorf("colors.%s components must be within [0, 255]", name))
				break
			}
		}
	}

	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be within [0, 1]")
	check(c.Audio.MusicVolume >= 0 && c.Audio.MusicVolume <= 1, "audio.music_volume must be within [0, 1]")

	return errors.Join(errs...)
}
