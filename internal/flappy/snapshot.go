package flappy

// Snapshot is a read-only view of a session for renderers.
type Snapshot struct {
	State     GameState
	Score     uint32
	Bird      Bird
	Pipes     []PipePair
	WingFrame int
	Shake     ShakeOffset
}

// Snapshot copies the renderable state of the session.
func (s *Session) Snapshot() Snapshot {
	pipes := make([]PipePair, len(s.pipes.Pairs()))
	copy(pipes, s.pipes.Pairs())
	return Snapshot{
		State:     s.state,
		Score:     s.data.Score,
		Bird:      s.bird,
		Pipes:     pipes,
		WingFrame: s.wing.frame,
	}
}
