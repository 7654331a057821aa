// Package flappy implements the flapper simulation: a falling player that
// must fly through gaps in scrolling walls while dodging pursuing enemies.
// The package is pure logic; it renders into a core.Screen buffer and
// reports sound triggers as events.
package flappy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-flapper/internal/config"
	"github.com/vovakirdan/tui-flapper/internal/core"
)

// Events emitted by Step for the audio collaborator.
const (
	EventFlap     core.Event = "flap"
	EventEnemyHit core.Event = "enemy-hit"
	EventGameOver core.Event = "game-over"
)

// Options configures a Session beyond the game configuration.
type Options struct {
	Seed           int64       // RNG seed; same seed and inputs give the same run
	Level          string      // Starting level name or 1-based number
	Best           BestStore   // Best-score persistence; nil keeps it in memory
	OnPersistError func(error) // Called when the best-score store fails
}

// Session holds all state of one game: phase, entities, generators and score.
// It is owned by a single goroutine.
type Session struct {
	cfg     config.Config
	phase   Phase
	player  *Player
	walls   []Wall
	enemies []Enemy

	rng      *rand.Rand
	wallGen  *WallGenerator
	enemyGen *EnemyGenerator
	levels   *config.LevelManager
	score    *ScoreKeeper

	ticks          int
	wallsPassed    int
	enemiesAvoided int
	events         []core.Event
}

// New creates a session on the start screen.
// The configuration is validated again so that a bad gap geometry can never
// reach the random gap draw.
func New(cfg config.Config, opts Options) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	levels := config.NewLevelManager(cfg.Levels, cfg.Progression)
	if err := levels.Select(opts.Level); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	s := &Session{
		cfg:      cfg,
		phase:    PhaseStartScreen,
		player:   NewPlayer(cfg.Player),
		walls:    make([]Wall, 0, 8),
		enemies:  make([]Enemy, 0, cfg.Enemies.MaxCount),
		rng:      rng,
		wallGen:  NewWallGenerator(rng, cfg),
		enemyGen: NewEnemyGenerator(rng, cfg),
		levels:   levels,
		score:    NewScoreKeeper(opts.Best, opts.OnPersistError),
	}
	return s, nil
}

// Title returns the display name for this game.
func (s *Session) Title() string {
	return s.cfg.Game.Title
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Step advances the game by one frame: input, phase transition, then the
// simulation when playing.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	s.events = nil

	if in.Has(core.ActionActivate) {
		s.activate()
	}
	if s.phase.Simulates() {
		s.update()
	}

	return core.StepResult{State: s.State(), Events: s.events}
}

// activate interprets the single action for the current phase.
func (s *Session) activate() {
	prev := s.phase
	s.phase = prev.Next(TriggerActivate)

	switch prev {
	case PhaseStartScreen, PhaseGameOver:
		s.startRun()
	case PhasePlaying:
		s.player.Jump()
		s.emit(EventFlap)
	}
}

// startRun resets everything a run owns. The best score survives.
func (s *Session) startRun() {
	s.player.Reset()
	s.walls = s.walls[:0]
	s.enemies = s.enemies[:0]
	s.wallGen.Reset()
	s.enemyGen.Reset()
	s.score.Reset()
	s.ticks = 0
	s.wallsPassed = 0
	s.enemiesAvoided = 0
}

// update runs one simulation tick. Any lethal event ends the tick at once.
func (s *Session) update() {
	s.ticks++

	s.player.Update()
	if s.player.OutOfBounds(float64(s.cfg.Game.WindowHeight)) {
		s.end()
		return
	}
	playerRect := s.player.Rect()

	for i := range s.walls {
		w := &s.walls[i]
		w.Update()
		if w.Collides(playerRect) {
			s.end()
			return
		}
		if !w.Passed && w.X+w.Width < s.player.X {
			w.Passed = true
			s.wallsPassed++
			s.score.Add(s.cfg.Scoring.PointsPerWall)
		}
	}
	s.walls = retainWalls(s.walls)

	kept := make([]Enemy, 0, len(s.enemies))
	for i := range s.enemies {
		e := &s.enemies[i]
		e.Update(s.player.X)
		if e.Collides(playerRect) {
			s.enemies = append(kept, s.enemies[i:]...)
			s.emit(EventEnemyHit)
			s.end()
			return
		}
		if e.OffScreen() {
			s.enemiesAvoided++
			s.score.Add(s.cfg.Scoring.PointsPerEnemyAvoided)
			continue
		}
		kept = append(kept, *e)
	}
	s.enemies = kept

	if w, ok := s.wallGen.Tick(); ok {
		s.walls = append(s.walls, w)
	}
	if e, ok := s.enemyGen.Tick(len(s.enemies), s.currentLevel()); ok {
		s.enemies = append(s.enemies, e)
	}
}

func retainWalls(walls []Wall) []Wall {
	kept := walls[:0]
	for _, w := range walls {
		if !w.OffScreen() {
			kept = append(kept, w)
		}
	}
	return kept
}

// end moves to game over and emits the trigger.
func (s *Session) end() {
	s.phase = s.phase.Next(TriggerLethal)
	s.emit(EventGameOver)
}

func (s *Session) emit(e core.Event) {
	s.events = append(s.events, e)
}

func (s *Session) currentLevel() config.Level {
	return s.levels.Level(s.score.Score())
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Phase:          s.phase.String(),
		Score:          s.score.Score(),
		Best:           s.score.Best(),
		Level:          s.currentLevel().Name,
		Playing:        s.phase == PhasePlaying,
		GameOver:       s.phase == PhaseGameOver,
		Ticks:          s.ticks,
		WallsPassed:    s.wallsPassed,
		EnemiesAvoided: s.enemiesAvoided,
	}
}
