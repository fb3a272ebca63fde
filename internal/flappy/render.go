package flappy

import (
	"fmt"
	"math"

	"github.com/mystal/flappy-bevy/internal/config"
	"github.com/mystal/flappy-bevy/internal/core"
)

// Visual characters for terminal rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundChar    = '▒'
	GrassChar     = '▀'
	BirdChar      = '@'
	BeakChar      = '>'
)

var wingChars = [wingFrames]rune{'^', '-', 'v'}

// hudRows is the number of rows reserved above the playfield.
const hudRows = 1

// viewport maps world units onto screen cells. World y grows upward, rows
// grow downward.
type viewport struct {
	cfg    config.Config
	sx, sy float64
	shake  ShakeOffset
}

func newViewport(cfg config.Config, w, h int, shake ShakeOffset) viewport {
	return viewport{
		cfg:   cfg,
		sx:    float64(w) / cfg.Screen.Width,
		sy:    float64(h-hudRows) / cfg.Screen.Height,
		shake: shake,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor((x + v.shake.X) * v.sx))
}

func (v viewport) row(y float64) int {
	return hudRows + int(math.Floor((v.cfg.Screen.Height-y-v.shake.Y)*v.sy))
}

// rect returns the cells covered by a world box.
func (v viewport) rect(b core.Box) core.Rect {
	c0 := v.col(b.Left())
	c1 := int(math.Ceil((b.Right() + v.shake.X) * v.sx))
	r0 := v.row(b.Top())
	r1 := hudRows + int(math.Ceil((v.cfg.Screen.Height-b.Bottom()-v.shake.Y)*v.sy))
	return core.NewRect(c0, r0, c1-c0, r1-r0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	snap := g.Snapshot()
	cfg := g.session.Config()
	v := newViewport(cfg, dst.Width(), dst.Height(), snap.Shake)

	for _, p := range snap.Pipes {
		drawPipe(dst, v, p, cfg.Pipes)
	}
	drawGround(dst, v, cfg)
	drawBird(dst, v, snap)
	g.drawHUD(dst, snap)
}

func drawPipe(dst *core.Screen, v viewport, p PipePair, pc config.Pipes) {
	top := v.rect(p.World(TopPipe(pc)))
	dst.DrawRect(top, PipeChar, core.ColorPipe)
	dst.DrawHLine(top.X, top.Bottom()-1, top.W, PipeCapTop, core.ColorPipeEdge)

	bottom := v.rect(p.World(BottomPipe(pc)))
	dst.DrawRect(bottom, PipeChar, core.ColorPipe)
	dst.DrawHLine(bottom.X, bottom.Y, bottom.W, PipeCapBottom, core.ColorPipeEdge)
}

func drawGround(dst *core.Screen, v viewport, cfg config.Config) {
	top := v.row(cfg.Screen.GroundTop())
	dst.DrawHLine(0, top, dst.Width(), GrassChar, core.ColorGrass)
	for y := top + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorGround)
	}
}

func drawBird(dst *core.Screen, v viewport, snap Snapshot) {
	x := v.col(snap.Bird.Position.X)
	y := v.row(snap.Bird.Position.Y)

	wing := wingChars[snap.WingFrame%wingFrames]
	beak := BeakChar
	switch {
	case snap.Bird.Tilt <= -45:
		beak = 'v'
	case snap.Bird.Tilt >= 15:
		beak = '^'
	}
	dst.SetColored(x-1, y, wing, core.ColorBird)
	dst.SetColored(x, y, BirdChar, core.ColorBird)
	dst.SetColored(x+1, y, beak, core.ColorBeak)
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextCentered(0, fmt.Sprintf(" %d ", snap.Score), core.ColorText)
	best := fmt.Sprintf("best %d ", g.best)
	dst.DrawText(dst.Width()-len(best), 0, best, core.ColorDim)

	mid := dst.Height() / 3
	switch {
	case g.paused:
		dst.DrawTextCentered(mid, " PAUSED ", core.ColorAccent)
		dst.DrawTextCentered(mid+1, " press p to resume ", core.ColorDim)
	case snap.State == StateReady:
		dst.DrawTextCentered(mid, " GET READY ", core.ColorAccent)
		dst.DrawTextCentered(mid+1, " tap space to flap ", core.ColorDim)
	case snap.State == StateLost:
		dst.DrawTextCentered(mid, " GAME OVER ", core.ColorAccent)
		if snap.Bird.Grounded(g.session.Config()) {
			dst.DrawTextCentered(mid+1, " tap to try again ", core.ColorDim)
		}
	}
}
