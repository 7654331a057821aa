package flappy

// Phase is the discrete game mode gating simulation updates.
type Phase int

const (
	PhaseStartScreen Phase = iota // initial, waiting for the first activate
	PhasePlaying                  // entities are simulated
	PhaseGameOver                 // run ended by a lethal collision
)

// Trigger is an input to the phase state machine.
type Trigger int

const (
	TriggerActivate Trigger = iota // start, flap or restart depending on phase
	TriggerLethal                  // collision or leaving the play area
)

// String returns the display name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStartScreen:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Next returns the phase that follows p when t occurs.
// Activate while playing keeps the phase (it is a flap, not a transition).
// Lethal outside of play is ignored.
func (p Phase) Next(t Trigger) Phase {
	switch p {
	case PhaseStartScreen:
		switch t {
		case TriggerActivate:
			return PhasePlaying
		case TriggerLethal:
			return PhaseStartScreen
		}
	case PhasePlaying:
		switch t {
		case TriggerActivate:
			return PhasePlaying
		case TriggerLethal:
			return PhaseGameOver
		}
	case PhaseGameOver:
		switch t {
		case TriggerActivate:
			return PhasePlaying
		case TriggerLethal:
			return PhaseGameOver
		}
	}
	return p
}

// Simulates reports whether entity updates run in this phase.
func (p Phase) Simulates() bool {
	return p == PhasePlaying
}
