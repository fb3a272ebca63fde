// Package window runs flappy in a desktop window on ebiten.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/mystal/flappy-bevy/internal/config"
	"github.com/mystal/flappy-bevy/internal/core"
	"github.com/mystal/flappy-bevy/internal/flappy"
	"github.com/mystal/flappy-bevy/internal/storage"
)

// Options carries the collaborators of the window runtime. Every field is
// optional.
type Options struct {
	Store   *storage.Store
	Watcher *config.Watcher
	Logger  *log.Logger
	Player  string
	// Preset is applied to reloaded configs. Empty keeps the file's choice.
	Preset config.Preset
}

var (
	skyColor    = color.RGBA{R: 112, G: 197, B: 206, A: 255}
	pipeColor   = color.RGBA{R: 115, G: 191, B: 46, A: 255}
	pipeEdge    = color.RGBA{R: 84, G: 128, B: 34, A: 255}
	groundColor = color.RGBA{R: 222, G: 216, B: 149, A: 255}
	grassColor  = color.RGBA{R: 94, G: 160, B: 40, A: 255}
	birdColor   = color.RGBA{R: 247, G: 213, B: 60, A: 255}
	beakColor   = color.RGBA{R: 240, G: 120, B: 40, A: 255}
	wingColor   = color.RGBA{R: 250, G: 240, B: 200, A: 255}
	textColor   = color.White
	shadowColor = color.RGBA{A: 160}
)

const grassHeight = 4

// Runtime implements ebiten.Game around a flappy.Game.
type Runtime struct {
	game     *flappy.Game
	opts     Options
	input    core.InputFrame
	world    *ebiten.Image
	face     ebtext.Face
	touchIDs []ebiten.TouchID
}

// New creates the runtime and resets the game with rc. Runs that end with
// a positive score are saved to opts.Store.
func New(cfg config.Config, rc core.RuntimeConfig, opts Options) *Runtime {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	r := &Runtime{
		opts:  opts,
		input: core.NewInputFrame(),
		face:  ebtext.NewGoXFace(basicfont.Face7x13),
	}
	r.game = flappy.NewGame(cfg,
		flappy.WithLogger(opts.Logger),
		flappy.OnLost(r.saveRun),
	)
	r.game.Reset(rc)

	if opts.Store != nil {
		if best, err := opts.Store.HighScore(string(cfg.Difficulty)); err == nil {
			r.game.SetBest(uint32(best))
		}
	}
	return r
}

func (r *Runtime) saveRun(score uint32) {
	if r.opts.Store == nil || score == 0 {
		return
	}
	difficulty := string(r.game.Session().Config().Difficulty)
	if _, err := r.opts.Store.SaveRun(r.opts.Player, difficulty, int(score)); err != nil {
		r.opts.Logger.Error("cannot save score", "err", err)
	}
}

// Update samples input and advances the simulation by one tick.
func (r *Runtime) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	r.pollConfig()

	if r.tapped() {
		r.input.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		r.input.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		r.input.Set(core.ActionRestart)
	}

	r.game.Step(r.input)
	r.input.Clear()
	return nil
}

// tapped reports a tap from the keyboard, the mouse or a touch screen.
func (r *Runtime) tapped() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyUp) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	r.touchIDs = inpututil.AppendJustPressedTouchIDs(r.touchIDs[:0])
	return len(r.touchIDs) > 0
}

// pollConfig applies a reloaded config without blocking the frame.
func (r *Runtime) pollConfig() {
	w := r.opts.Watcher
	if w == nil {
		return
	}
	select {
	case cfg, ok := <-w.Configs:
		if !ok {
			r.opts.Watcher = nil
			return
		}
		cfg = config.ResolvePreset(cfg, r.opts.Preset)
		if err := r.game.Reconfigure(cfg); err != nil {
			r.opts.Logger.Warn("config reload rejected", "err", err)
			return
		}
		r.opts.Logger.Info("config reloaded", "difficulty", cfg.Difficulty)
	case err, ok := <-w.Errors:
		if ok {
			r.opts.Logger.Warn("config reload rejected", "err", err)
		}
	default:
	}
}

// Draw renders the world off screen, then blits it with the camera shake.
func (r *Runtime) Draw(screen *ebiten.Image) {
	cfg := r.game.Session().Config()
	w, h := int(cfg.Screen.Width), int(cfg.Screen.Height)
	if r.world == nil || r.world.Bounds().Dx() != w || r.world.Bounds().Dy() != h {
		r.world = ebiten.NewImage(w, h)
	}

	snap := r.game.Snapshot()
	r.world.Fill(skyColor)
	for _, p := range snap.Pipes {
		r.drawPipe(p, cfg)
	}
	r.drawGround(cfg)
	r.drawBird(snap, cfg)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Rotate(-snap.Shake.Angle * math.Pi / 180)
	op.GeoM.Translate(float64(w)/2+snap.Shake.X, float64(h)/2-snap.Shake.Y)
	screen.Fill(skyColor)
	screen.DrawImage(r.world, op)

	r.drawHUD(screen, snap, cfg)
}

// fillBox draws a world box. World y grows upward.
func (r *Runtime) fillBox(b core.Box, h float64, c color.Color) {
	vector.DrawFilledRect(r.world,
		float32(b.Left()), float32(h-b.Top()),
		float32(2*b.Half.X), float32(2*b.Half.Y),
		c, false)
}

func (r *Runtime) drawPipe(p flappy.PipePair, cfg config.Config) {
	h := cfg.Screen.Height
	top := p.World(flappy.TopPipe(cfg.Pipes))
	bottom := p.World(flappy.BottomPipe(cfg.Pipes))
	r.fillBox(top, h, pipeColor)
	r.fillBox(bottom, h, pipeColor)

	// Caps at the gap edges
	const capH = 6
	r.fillBox(core.NewBox(core.V(top.Center.X, top.Bottom()+capH/2), 2*top.Half.X+4, capH), h, pipeEdge)
	r.fillBox(core.NewBox(core.V(bottom.Center.X, bottom.Top()-capH/2), 2*bottom.Half.X+4, capH), h, pipeEdge)
}

func (r *Runtime) drawGround(cfg config.Config) {
	h := float32(cfg.Screen.Height)
	w := float32(cfg.Screen.Width)
	top := float32(cfg.Screen.GroundTop())
	vector.DrawFilledRect(r.world, 0, h-top, w, top, groundColor, false)
	vector.DrawFilledRect(r.world, 0, h-top, w, grassHeight, grassColor, false)
}

func (r *Runtime) drawBird(snap flappy.Snapshot, cfg config.Config) {
	h := cfg.Screen.Height
	pos := snap.Bird.Position
	radius := cfg.Bird.Radius
	cx, cy := float32(pos.X), float32(h-pos.Y)
	vector.DrawFilledCircle(r.world, cx, cy, float32(radius), birdColor, true)

	// Beak points along the tilt.
	rad := snap.Bird.Tilt * math.Pi / 180
	bx := pos.X + radius*math.Cos(rad)
	by := h - (pos.Y + radius*math.Sin(rad))
	vector.DrawFilledCircle(r.world, float32(bx), float32(by), float32(radius/2.5), beakColor, true)

	// Wing bobs through three frames.
	wingY := []float32{-2, 0, 2}[snap.WingFrame%3]
	vector.DrawFilledRect(r.world, cx-float32(radius), cy+wingY-1, float32(radius), 3, wingColor, false)
}

func (r *Runtime) drawHUD(screen *ebiten.Image, snap flappy.Snapshot, cfg config.Config) {
	w := cfg.Screen.Width
	r.drawText(screen, fmt.Sprintf("%d", snap.Score), w/2, 16)
	r.drawText(screen, fmt.Sprintf("best %d", r.game.Best()), w-32, 4)

	mid := cfg.Screen.Height / 3
	switch {
	case r.game.Paused():
		r.drawText(screen, "PAUSED", w/2, mid)
	case snap.State == flappy.StateReady:
		r.drawText(screen, "GET READY", w/2, mid)
		r.drawText(screen, "tap to flap", w/2, mid+16)
	case snap.State == flappy.StateLost:
		r.drawText(screen, "GAME OVER", w/2, mid)
		if snap.Bird.Grounded(cfg) {
			r.drawText(screen, "tap to try again", w/2, mid+16)
		}
	}
}

// drawText draws s centered on x with a drop shadow.
func (r *Runtime) drawText(screen *ebiten.Image, s string, x, y float64) {
	for i, c := range []color.Color{shadowColor, textColor} {
		op := &ebtext.DrawOptions{}
		op.PrimaryAlign = ebtext.AlignCenter
		op.GeoM.Translate(x+float64(1-i), y+float64(1-i))
		op.ColorScale.ScaleWithColor(c)
		ebtext.Draw(screen, s, r.face, op)
	}
}

// Layout keeps the logical size fixed and lets ebiten scale it.
func (r *Runtime) Layout(_, _ int) (int, int) {
	cfg := r.game.Session().Config()
	return int(cfg.Screen.Width), int(cfg.Screen.Height)
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config, rc core.RuntimeConfig, opts Options) error {
	scale := max(cfg.Window.Scale, 1)
	ebiten.SetWindowSize(int(cfg.Screen.Width)*scale, int(cfg.Screen.Height)*scale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if rc.TickRate > 0 {
		ebiten.SetTPS(rc.TickRate)
	}

	err := ebiten.RunGame(New(cfg, rc, opts))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
