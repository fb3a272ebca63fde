package flappy

import (
	"math/rand"
	"testing"

	"github.com/mystal/flappy-bevy/internal/config"
	"github.com/mystal/flappy-bevy/internal/core"
)

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	return NewSession(config.Default(), 42, opts...)
}

func tap(s *Session) {
	s.Tick(TickInput{DT: tick, Tapped: true})
}

func idle(s *Session, events ...core.CollisionEvent) {
	s.Tick(TickInput{DT: tick, Collisions: events})
}

func scoreEvent(s *Session) core.CollisionEvent {
	return core.CollisionEvent{A: BirdID, B: s.Pipes().Pairs()[0].ZoneID}
}

func pipeEvent(s *Session) core.CollisionEvent {
	return core.CollisionEvent{A: s.Pipes().Pairs()[0].TopID, B: BirdID}
}

func TestSessionStartsReady(t *testing.T) {
	s := newTestSession(t)
	cfg := s.Config()

	if s.State() != StateReady {
		t.Errorf("State() = %v, expected ready", s.State())
	}
	if s.Bird().Position != core.V(30, 160) {
		t.Errorf("bird at %+v, expected (30, 160)", s.Bird().Position)
	}
	if got := s.Pipes().Pairs()[0].X; got != cfg.Pipes.InitX {
		t.Errorf("first pipe X = %v, expected %v", got, cfg.Pipes.InitX)
	}
}

func TestTapStartsPlaying(t *testing.T) {
	s := newTestSession(t)
	tap(s)

	if s.State() != StatePlaying {
		t.Fatalf("State() = %v, expected playing", s.State())
	}
	if s.Bird().Speed != 230 {
		t.Errorf("Speed = %v, expected 230", s.Bird().Speed)
	}
	if s.Bird().Position != core.V(30, 160) {
		t.Errorf("bird left spawn on the starting tap: %+v", s.Bird().Position)
	}

	idle(s)
	if s.Bird().Tilt <= 0 {
		t.Errorf("Tilt = %v, expected nose up after the first flap", s.Bird().Tilt)
	}
}

func TestScoreZoneAddsPoint(t *testing.T) {
	s := newTestSession(t)
	tap(s)

	idle(s, scoreEvent(s))
	if s.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", s.Score())
	}
	if s.State() != StatePlaying {
		t.Errorf("State() = %v, expected playing", s.State())
	}
}

func TestScoreIgnoredOutsidePlaying(t *testing.T) {
	s := newTestSession(t)
	idle(s, scoreEvent(s))
	if s.Score() != 0 {
		t.Errorf("Score() = %d while ready, expected 0", s.Score())
	}
}

func TestGroundCrashSameTick(t *testing.T) {
	s := newTestSession(t)
	tap(s)

	cfg := s.Config()
	s.bird.Position.Y = cfg.Screen.GroundTop() + cfg.Bird.Radius - 1
	s.bird.Speed = 0

	idle(s)
	if s.State() != StateLost {
		t.Errorf("State() = %v, expected lost in the same tick", s.State())
	}
	if s.Bird().Speed != 0 {
		t.Errorf("Speed = %v, expected frozen bird", s.Bird().Speed)
	}
}

func TestPipeCrashAtAltitude(t *testing.T) {
	s := newTestSession(t)
	tap(s)
	idle(s, pipeEvent(s))

	if s.State() != StateLost {
		t.Fatalf("State() = %v, expected lost", s.State())
	}

	if x := s.Pipes().Pairs()[0].X; x >= s.Config().Pipes.InitX {
		t.Fatalf("pair 0 X = %v, expected pipes to have scrolled while playing", x)
	}

	// Taps are ignored until the bird lands.
	tap(s)
	if s.State() != StateLost {
		t.Errorf("State() = %v, expected tap ignored while falling", s.State())
	}

	for i := 0; i < 300 && !s.bird.Grounded(s.Config()); i++ {
		idle(s)
	}
	if !s.bird.Grounded(s.Config()) {
		t.Fatal("bird never reached the ground")
	}

	tap(s)
	if s.State() != StateReady {
		t.Errorf("State() = %v, expected ready after grounded tap", s.State())
	}
	if s.Score() != 0 || s.Bird().Position != Spawn(s.Config()) {
		t.Errorf("ready entry did not reset: score %d bird %+v", s.Score(), s.Bird())
	}

	pc := s.Config().Pipes
	for i, p := range s.Pipes().Pairs() {
		want := pc.InitX + float64(i)*pc.Spacing
		if p.X != want {
			t.Errorf("pair %d X = %v, expected %v after ready entry", i, p.X, want)
		}
	}
}

func TestMultipleTapsCoalesce(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	in.Set(core.ActionJump)

	a := newTestSession(t)
	a.Tick(TickInput{DT: tick, Tapped: in.Tapped()})
	b := newTestSession(t)
	tap(b)

	if a.State() != b.State() || a.Bird() != b.Bird() {
		t.Errorf("double tap %+v differs from single tap %+v", a.Bird(), b.Bird())
	}
}

func TestLostHookAndShaker(t *testing.T) {
	var scores []uint32
	shake := NewCameraShake(config.Default().Camera, rand.New(rand.NewSource(1)))
	s := newTestSession(t, OnLost(func(score uint32) { scores = append(scores, score) }), WithShaker(shake))

	tap(s)
	idle(s, scoreEvent(s))
	idle(s, pipeEvent(s))
	idle(s, pipeEvent(s))

	if len(scores) != 1 || scores[0] != 1 {
		t.Errorf("lost hook calls = %v, expected [1]", scores)
	}
	if shake.Trauma() != config.Default().Camera.CrashTrauma {
		t.Errorf("Trauma() = %v, expected %v", shake.Trauma(), config.Default().Camera.CrashTrauma)
	}
}

// Score never goes down within an episode and only moves while playing.
func TestScoreMonotonic(t *testing.T) {
	s := newTestSession(t)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 5000; i++ {
		prevState, prevScore := s.State(), s.Score()

		var events []core.CollisionEvent
		switch rng.Intn(10) {
		case 0:
			events = append(events, scoreEvent(s))
		case 1:
			events = append(events, pipeEvent(s))
		}
		s.Tick(TickInput{DT: tick, Tapped: rng.Intn(8) == 0, Collisions: events})

		if s.State() == StateReady {
			if s.Score() != 0 {
				t.Fatalf("tick %d: score %d while ready", i, s.Score())
			}
			continue
		}
		if s.Score() < prevScore {
			t.Fatalf("tick %d: score dropped %d -> %d", i, prevScore, s.Score())
		}
		if s.Score() != prevScore && prevState != StatePlaying {
			t.Fatalf("tick %d: score changed in %v", i, prevState)
		}
	}
}

func TestReconfigureWaitsForReady(t *testing.T) {
	s := newTestSession(t)
	tap(s)

	cfg := config.ApplyPreset(config.Default(), config.PresetHard)
	gen := s.Generation()
	if err := s.Reconfigure(cfg); err != nil {
		t.Fatal(err)
	}
	if s.Config().Pipes.Speed == cfg.Pipes.Speed {
		t.Fatal("config applied mid-episode")
	}

	s.Restart()
	if s.Config() != cfg {
		t.Errorf("Config() = %+v, expected hard preset", s.Config().Pipes)
	}
	if s.Generation() == gen {
		t.Error("Generation() unchanged after rebuild")
	}
}

func TestReconfigureRejectsInvalid(t *testing.T) {
	s := newTestSession(t)
	cfg := config.Default()
	cfg.Pipes.GapMin = 300
	if err := s.Reconfigure(cfg); err == nil {
		t.Error("Reconfigure() = nil, expected error")
	}
}

func TestNewSessionPanicsOnInvalidConfig(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewSession did not panic")
		}
	}()
	cfg := config.Default()
	cfg.Bird.Gravity = 100
	NewSession(cfg, 1)
}

func TestNilSessionIsNoop(t *testing.T) {
	var s *Session
	s.Tick(TickInput{DT: tick, Tapped: true})
	s.Restart()
}

func TestResolveWithoutAdvanceIsNoop(t *testing.T) {
	s := newTestSession(t)
	tap(s)
	s.Resolve([]core.CollisionEvent{scoreEvent(s)})
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected stray Resolve to be ignored", s.Score())
	}
}

func TestWingAnimationStopsWhenLost(t *testing.T) {
	s := newTestSession(t)
	start := s.Snapshot().WingFrame
	for i := 0; i < s.Config().Bird.FlapFrameTicks; i++ {
		idle(s)
	}
	if s.Snapshot().WingFrame == start {
		t.Fatal("wings did not flap while ready")
	}

	tap(s)
	idle(s, pipeEvent(s))
	frozen := s.Snapshot().WingFrame
	for i := 0; i < 30; i++ {
		idle(s)
	}
	if s.Snapshot().WingFrame != frozen {
		t.Error("wings kept flapping after the crash")
	}
}
