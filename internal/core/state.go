package core

// Event is a named trigger produced by a simulation tick for collaborators
// such as the audio player.
type Event string

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    string // Human-readable phase name
	Score    int    // Current score
	Best     int    // Best score across runs
	Level    string // Active level name
	Playing  bool   // Whether entities are being simulated
	GameOver bool   // Whether the run has ended

	// Run statistics, reset when a run starts.
	Ticks          int
	WallsPassed    int
	EnemiesAvoided int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the given event was emitted during this step.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
