package flappy

import (
	"strings"
	"testing"

	"github.com/mystal/flappy-bevy/internal/config"
	"github.com/mystal/flappy-bevy/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 60, ScreenH: 30, TickRate: 60, Seed: seed}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// wideGapConfig pins every gap to the spawn height so a bird hovering there
// always flies through.
func wideGapConfig() config.Config {
	cfg := config.Default()
	cfg.Pipes.GapSize = 180
	cfg.Pipes.GapMin = 160
	cfg.Pipes.GapMax = 160
	return cfg
}

func TestGameCrashesOnGround(t *testing.T) {
	var lost []uint32
	g := NewGame(config.Default(), OnLost(func(s uint32) { lost = append(lost, s) }))
	g.Reset(testRuntime(1))

	g.Step(frame(core.ActionJump))
	var state core.GameState
	for i := 0; i < 120 && !state.GameOver; i++ {
		state = g.Step(frame()).State
	}

	if !state.GameOver {
		t.Fatal("bird never hit the ground")
	}
	if state.Score != 0 {
		t.Errorf("Score = %d, expected 0", state.Score)
	}
	if len(lost) != 1 {
		t.Errorf("lost hook called %d times, expected 1", len(lost))
	}
	if g.shake.Trauma() == 0 {
		t.Error("crash did not shake the camera")
	}
}

func TestGameScoresThroughPhysics(t *testing.T) {
	g := NewGame(wideGapConfig())
	g.Reset(testRuntime(5))

	g.Step(frame(core.ActionJump))
	for i := 0; i < 240; i++ {
		in := frame()
		if g.Session().Bird().Position.Y < 150 {
			in.Set(core.ActionJump)
		}
		g.Step(in)
	}

	if g.Session().State() != StatePlaying {
		t.Fatalf("State() = %v, expected the bird to survive", g.Session().State())
	}
	if g.Session().Score() < 1 {
		t.Errorf("Score() = %d, expected at least one pipe passed", g.Session().Score())
	}
	if g.Best() != g.Session().Score() {
		t.Errorf("Best() = %d, expected %d", g.Best(), g.Session().Score())
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (Snapshot, core.GameState) {
		g := NewGame(config.Default())
		g.Reset(testRuntime(12345))
		var st core.GameState
		for i := 0; i < 200; i++ {
			in := frame()
			if i%18 == 0 {
				in.Set(core.ActionJump)
			}
			st = g.Step(in).State
		}
		return g.Snapshot(), st
	}

	s1, st1 := run()
	s2, st2 := run()
	if st1 != st2 {
		t.Errorf("states differ: %+v vs %+v", st1, st2)
	}
	if s1.Bird != s2.Bird || s1.Score != s2.Score {
		t.Errorf("snapshots differ: %+v vs %+v", s1.Bird, s2.Bird)
	}
	for i := range s1.Pipes {
		if s1.Pipes[i] != s2.Pipes[i] {
			t.Errorf("pipe %d differs: %+v vs %+v", i, s1.Pipes[i], s2.Pipes[i])
		}
	}
}

func TestGamePause(t *testing.T) {
	g := NewGame(config.Default())
	g.Reset(testRuntime(1))
	g.Step(frame(core.ActionJump))

	st := g.Step(frame(core.ActionPause)).State
	if !st.Paused {
		t.Fatal("expected paused")
	}
	before := g.Session().Bird()
	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionJump))
	}
	if g.Session().Bird() != before {
		t.Error("bird moved while paused")
	}

	if st := g.Step(frame(core.ActionPause)).State; st.Paused {
		t.Error("expected unpaused")
	}
}

func TestGameRestart(t *testing.T) {
	g := NewGame(config.Default())
	g.Reset(testRuntime(1))
	g.Step(frame(core.ActionJump))
	for i := 0; i < 10; i++ {
		g.Step(frame())
	}

	g.Step(frame(core.ActionRestart))
	if g.Session().State() != StateReady {
		t.Errorf("State() = %v, expected ready after restart", g.Session().State())
	}
}

func TestGameRender(t *testing.T) {
	g := NewGame(config.Default())
	g.Reset(testRuntime(1))
	g.SetBest(7)

	screen := core.NewScreen(60, 30)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"GET READY", "best 7", string(BirdChar), string(GroundChar)} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}
