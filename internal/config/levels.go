package config

import (
	"fmt"
	"strconv"
	"strings"
)

// LevelManager picks the active level from the configured list.
// The run starts at a selected level and, when progression is enabled,
// climbs one level per PointsPerLevel points until the last level.
type LevelManager struct {
	levels      []Level
	progression ProgressionConfig
	start       int
}

// NewLevelManager creates a level manager starting at the first level.
func NewLevelManager(levels []Level, progression ProgressionConfig) *LevelManager {
	return &LevelManager{
		levels:      levels,
		progression: progression,
	}
}

// Select sets the starting level by name (case-insensitive) or 1-based number.
// An empty selector keeps the current start.
func (m *LevelManager) Select(selector string) error {
	if selector == "" {
		return nil
	}
	for i, lvl := range m.levels {
		if strings.EqualFold(lvl.Name, selector) {
			m.start = i
			return nil
		}
	}
	if n, err := strconv.Atoi(selector); err == nil && n >= 1 && n <= len(m.levels) {
		m.start = n - 1
		return nil
	}
	return fmt.Errorf("config: unknown level %q (available: %s)", selector, strings.Join(m.Names(), ", "))
}

// Index returns the active level index for the given run score.
func (m *LevelManager) Index(score int) int {
	idx := m.start
	if m.progression.Enabled && m.progression.PointsPerLevel > 0 && score > 0 {
		idx += score / m.progression.PointsPerLevel
	}
	if last := len(m.levels) - 1; idx > last {
		idx = last
	}
	return idx
}

// Level returns the active level for the given run score.
func (m *LevelManager) Level(score int) Level {
	return m.levels[m.Index(score)]
}

// Names returns the level names in order.
func (m *LevelManager) Names() []string {
	names := make([]string, len(m.levels))
	for i, lvl := range m.levels {
		names[i] = lvl.Name
	}
	return names
}
