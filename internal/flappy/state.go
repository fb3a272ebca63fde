package flappy

// GameState selects which parts of the simulation run each tick.
type GameState uint8

const (
	StateReady GameState = iota
	StatePlaying
	StateLost
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}
