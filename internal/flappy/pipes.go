package flappy

import (
	"math"
	"math/rand"

	"github.com/mystal/flappy-bevy/internal/config"
	"github.com/mystal/flappy-bevy/internal/core"
)

// PipePair is one recyclable obstacle: a top pipe, a bottom pipe and the
// score zone in the gap between them.
type PipePair struct {
	X         float64
	GapCenter float64

	BodyID   core.BodyID // the pair as a whole
	ZoneID   core.BodyID
	TopID    core.BodyID
	BottomID core.BodyID
}

// Center returns the pair's anchor point.
func (p PipePair) Center() core.Vec2 {
	return core.V(p.X, p.GapCenter)
}

// ScoreZone returns the score sensor relative to the pair's center.
func ScoreZone(pc config.Pipes) core.Box {
	return core.Box{
		Center: core.V(pc.ZoneOffsetX, 0),
		Half:   core.V(pc.ZoneHalfWidth, pc.GapSize/2),
	}
}

// TopPipe returns the upper segment relative to the pair's center.
func TopPipe(pc config.Pipes) core.Box {
	return core.NewBox(core.V(0, (pc.SegmentHeight+pc.GapSize)/2), pc.Width, pc.SegmentHeight)
}

// BottomPipe returns the lower segment relative to the pair's center.
func BottomPipe(pc config.Pipes) core.Box {
	return core.NewBox(core.V(0, -(pc.SegmentHeight+pc.GapSize)/2), pc.Width, pc.SegmentHeight)
}

// World returns a box relative to the pair translated into world space.
func (p PipePair) World(local core.Box) core.Box {
	return core.Box{Center: local.Center.Add(p.Center()), Half: local.Half}
}

// NextGap picks the next gap center within GapRange of last, kept inside
// [GapMin, GapMax]. u must be in [0, 1). Halves round away from zero.
func NextGap(last, u float64, pc config.Pipes) float64 {
	lo := math.Max(last-pc.GapRange, pc.GapMin)
	hi := math.Min(last+pc.GapRange, pc.GapMax)
	return math.Round(lo + (hi-lo)*u)
}

// PipeField owns a fixed pool of pipe pairs and the random walk of gap centers.
type PipeField struct {
	pairs   []PipePair
	lastGap float64
	rng     *rand.Rand
	cfg     config.Config
}

// NewPipeField allocates cfg.Pipes.Count pairs. Each pair takes four
// consecutive body IDs starting at base.
func NewPipeField(cfg config.Config, rng *rand.Rand, base core.BodyID) *PipeField {
	f := &PipeField{
		pairs: make([]PipePair, cfg.Pipes.Count),
		rng:   rng,
		cfg:   cfg,
	}
	for i := range f.pairs {
		id := base + core.BodyID(i*4)
		f.pairs[i] = PipePair{BodyID: id, ZoneID: id + 1, TopID: id + 2, BottomID: id + 3}
	}
	f.Reset()
	return f
}

// Tag records the role of every collider in the field.
func (f *PipeField) Tag(roles core.RoleTable) {
	for _, p := range f.pairs {
		roles[p.ZoneID] = core.RoleScoreZone
		roles[p.TopID] = core.RolePipeBody
		roles[p.BottomID] = core.RolePipeBody
	}
}

// Pairs returns the pool. Callers must not modify it.
func (f *PipeField) Pairs() []PipePair {
	return f.pairs
}

// LastGap returns the most recently generated gap center.
func (f *PipeField) LastGap() float64 {
	return f.lastGap
}

// Generate draws the next gap center and remembers it.
func (f *PipeField) Generate() float64 {
	f.lastGap = NextGap(f.lastGap, f.rng.Float64(), f.cfg.Pipes)
	return f.lastGap
}

// Reset lays the pairs out in their starting slots, generating gaps in order
// from the screen midpoint.
func (f *PipeField) Reset() {
	f.lastGap = f.cfg.Screen.MidY()
	for i := range f.pairs {
		f.pairs[i].X = f.cfg.Pipes.InitX + float64(i)*f.cfg.Pipes.Spacing
		f.pairs[i].GapCenter = f.Generate()
	}
}

// Advance scrolls every pair left and recycles the ones that left the screen.
func (f *PipeField) Advance(dt float64) {
	for i := range f.pairs {
		f.pairs[i].X -= f.cfg.Pipes.Speed * dt
		f.recycle(&f.pairs[i])
	}
}

func (f *PipeField) recycle(p *PipePair) {
	if p.X >= f.cfg.Pipes.RecycleX {
		return
	}
	p.X = f.cfg.Pipes.SpawnX
	p.GapCenter = f.Generate()
}
