package flappy

import (
	"math/rand"

	"github.com/mystal/flappy-bevy/internal/config"
	"github.com/mystal/flappy-bevy/internal/core"
	"github.com/mystal/flappy-bevy/internal/physics"
)

// Game drives a Session for a platform frontend. It owns the physics world
// that turns positions into overlap events, the camera shake and pausing.
type Game struct {
	cfg     config.Config
	rc      core.RuntimeConfig
	opts    options
	rawOpts []Option

	session  *Session
	world    *physics.World
	worldGen int
	shake    *CameraShake

	paused bool
	best   uint32
}

// NewGame creates a game. Reset must be called before Step.
func NewGame(cfg config.Config, opts ...Option) *Game {
	return &Game{
		cfg:     cfg,
		opts:    buildOptions(opts),
		rawOpts: opts,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.cfg.Window.Title
}

// Reset starts a fresh session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rc = rc
	g.paused = false
	g.shake = NewCameraShake(g.cfg.Camera, rand.New(rand.NewSource(rc.Seed^0x5eed)))

	opts := append([]Option{}, g.rawOpts...)
	opts = append(opts, WithShaker(g.shake))
	g.session = NewSession(g.cfg, rc.Seed, opts...)
	g.world = nil
	g.syncWorld()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionRestart) {
		g.session.Restart()
	}

	dt := g.rc.DT()
	g.session.Advance(dt, in.Tapped())
	g.syncWorld()
	events := g.world.Step(dt)
	g.session.Resolve(events)
	g.shake.Update(dt)

	if s := g.session.Score(); s > g.best {
		g.best = s
	}
	return core.StepResult{State: g.State()}
}

// syncWorld mirrors session positions into the physics world, rebuilding it
// whenever the session's colliders changed.
func (g *Game) syncWorld() {
	s := g.session
	cfg := s.Config()
	if g.world == nil || g.worldGen != s.Generation() {
		g.world = g.buildWorld(cfg)
		g.worldGen = s.Generation()
	}

	g.world.Move(BirdID, s.Bird().Position)
	for _, p := range s.Pipes().Pairs() {
		g.world.Move(p.BodyID, p.Center())
	}
}

func (g *Game) buildWorld(cfg config.Config) *physics.World {
	w := physics.NewWorld()
	w.Watch(core.RoleBird)

	s := g.session
	if err := w.AddCircle(BirdID, core.RoleBird, s.Bird().Position, cfg.Bird.Radius); err != nil {
		g.opts.logger.Error("cannot add bird", "err", err)
	}
	for _, p := range s.Pipes().Pairs() {
		err := w.AddCompound(p.BodyID, p.Center(),
			physics.Part{ID: p.ZoneID, Role: core.RoleScoreZone, Local: ScoreZone(cfg.Pipes)},
			physics.Part{ID: p.TopID, Role: core.RolePipeBody, Local: TopPipe(cfg.Pipes)},
			physics.Part{ID: p.BottomID, Role: core.RolePipeBody, Local: BottomPipe(cfg.Pipes)},
		)
		if err != nil {
			g.opts.logger.Error("cannot add pipe pair", "id", p.BodyID, "err", err)
		}
	}
	g.opts.logger.Debug("physics world built", "bodies", w.Len())
	return w
}

// Reconfigure applies cfg at the next Ready. The camera picks it up at once.
func (g *Game) Reconfigure(cfg config.Config) error {
	if g.session != nil {
		if err := g.session.Reconfigure(cfg); err != nil {
			return err
		}
	}
	g.cfg = cfg
	if g.shake != nil {
		g.shake.Configure(cfg.Camera)
	}
	return nil
}

// SetBest seeds the best score shown in the HUD.
func (g *Game) SetBest(best uint32) {
	g.best = best
}

// Best returns the best score seen so far.
func (g *Game) Best() uint32 {
	return g.best
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot returns the renderable state including the camera offset.
func (g *Game) Snapshot() Snapshot {
	snap := g.session.Snapshot()
	snap.Shake = g.shake.Offset()
	return snap
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(g.session.Score()),
		GameOver: g.session.State() == StateLost,
		Paused:   g.paused,
	}
}
