// Package flappy implements the flappy bird simulation: the bird's kinematics,
// the recycled pipe field, the interpretation of overlap events and the
// Ready/Playing/Lost state machine tying them together.
package flappy

import (
	"fmt"
	"math/rand"

	"github.com/mystal/flappy-bevy/internal/config"
	"github.com/mystal/flappy-bevy/internal/core"
)

// BirdID is the collider ID of the bird. Pipe pairs start right after it.
const BirdID core.BodyID = 1

// GameData is the per-episode record.
type GameData struct {
	Score uint32
}

// TickInput is everything the outside world supplies for one tick.
type TickInput struct {
	DT         float64
	Tapped     bool // taps within a tick are coalesced
	Collisions []core.CollisionEvent
}

// Session is one player's game. It is not safe for concurrent use.
type Session struct {
	cfg     config.Config
	pending *config.Config

	state GameState
	next  GameState
	open  bool // Advance ran and Resolve has not

	bird  Bird
	pipes *PipeField
	data  GameData
	roles core.RoleTable
	rng   *rand.Rand

	wing       wingAnim
	generation int

	opts options
}

// NewSession creates a session in Ready. It panics if cfg is invalid;
// callers loading user files should Validate first.
func NewSession(cfg config.Config, seed int64, opts ...Option) *Session {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("flappy: %v", err))
	}
	s := &Session{
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(seed)),
		opts: buildOptions(opts),
	}
	s.build()
	s.state = StateReady
	s.next = StateReady
	s.enter(StateReady)
	return s
}

// build allocates the colliders for the current config.
func (s *Session) build() {
	s.pipes = NewPipeField(s.cfg, s.rng, BirdID+1)
	s.roles = core.RoleTable{BirdID: core.RoleBird}
	s.pipes.Tag(s.roles)
	s.generation++
}

// Tick runs one full simulation step.
func (s *Session) Tick(in TickInput) {
	s.Advance(in.DT, in.Tapped)
	s.Resolve(in.Collisions)
}

// Advance runs the first half of a tick: tap handling, bird integration and
// pipe scrolling. Overlap detection belongs between Advance and Resolve.
func (s *Session) Advance(dt float64, tapped bool) {
	if s == nil {
		return
	}
	s.open = true
	s.next = s.state

	jumped := tapped && s.state == StatePlaying
	if tapped {
		switch s.state {
		case StateReady:
			s.next = StatePlaying
		case StateLost:
			if s.bird.Grounded(s.cfg) {
				s.next = StateReady
			}
		}
	}

	s.bird.Update(dt, jumped, s.state, s.cfg)

	if s.state == StatePlaying {
		s.pipes.Advance(dt)
	}
	s.wing.step(s.cfg.Bird.FlapFrameTicks)
}

// Resolve runs the second half of a tick: it applies score and crash facts
// from the overlap events and then performs any pending state change.
func (s *Session) Resolve(collisions []core.CollisionEvent) {
	if s == nil || !s.open {
		return
	}
	s.open = false

	if s.state == StatePlaying {
		facts := Interpret(collisions, s.roles, s.bird.Position.Y, s.cfg)
		s.data.Score += uint32(facts.Scores)
		if facts.Crashed {
			s.next = StateLost
			s.opts.logger.Debug("crashed", "ground", facts.HitGround, "y", s.bird.Position.Y)
		}
	}

	if s.next != s.state {
		s.transition(s.next)
	}
}

// Restart abandons the current episode and returns to Ready.
func (s *Session) Restart() {
	if s == nil {
		return
	}
	s.open = false
	s.transition(StateReady)
}

// Reconfigure schedules cfg to take effect the next time the session enters
// Ready. An invalid config is rejected.
func (s *Session) Reconfigure(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.pending = &cfg
	if s.state == StateReady && !s.open {
		s.transition(StateReady)
	}
	return nil
}

func (s *Session) transition(to GameState) {
	from := s.state
	s.exit(from)
	s.state = to
	s.next = to
	s.opts.logger.Debug("enter state", "from", from, "to", to, "score", s.data.Score)
	s.enter(to)
}

func (s *Session) exit(st GameState) {
	if st == StatePlaying {
		s.bird.Freeze()
		s.wing.stop()
	}
}

func (s *Session) enter(st GameState) {
	switch st {
	case StateReady:
		if s.pending != nil {
			s.cfg = *s.pending
			s.pending = nil
			s.build()
			s.opts.logger.Info("configuration applied", "difficulty", s.cfg.Difficulty)
		}
		s.data.Score = 0
		s.bird.Reset(s.cfg)
		s.pipes.Reset()
		s.wing.play()
	case StatePlaying:
		s.bird.Flap(s.cfg)
	case StateLost:
		if s.opts.shaker != nil {
			s.opts.shaker.AddTrauma(s.cfg.Camera.CrashTrauma)
		}
		for _, fn := range s.opts.onLost {
			fn(s.data.Score)
		}
	}
}

// State returns the current state.
func (s *Session) State() GameState {
	return s.state
}

// Score returns the current episode's score.
func (s *Session) Score() uint32 {
	return s.data.Score
}

// Bird returns a copy of the bird.
func (s *Session) Bird() Bird {
	return s.bird
}

// Pipes returns the pipe field.
func (s *Session) Pipes() *PipeField {
	return s.pipes
}

// Roles answers role queries for every collider the session owns.
func (s *Session) Roles() core.RoleTable {
	return s.roles
}

// Config returns the active configuration.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Generation changes whenever the set of colliders is rebuilt.
func (s *Session) Generation() int {
	return s.generation
}

// wingAnim is the cosmetic flap cycle shown while the bird is alive.
type wingAnim struct {
	playing bool
	ticks   int
	frame   int
}

const wingFrames = 3

func (w *wingAnim) play() {
	w.playing = true
}

func (w *wingAnim) stop() {
	w.playing = false
}

func (w *wingAnim) step(frameTicks int) {
	if !w.playing {
		return
	}
	w.ticks++
	if w.ticks >= frameTicks {
		w.ticks = 0
		w.frame = (w.frame + 1) % wingFrames
	}
}
