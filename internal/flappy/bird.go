package flappy

import (
	"github.com/mystal/flappy-bevy/internal/config"
	"github.com/mystal/flappy-bevy/internal/core"
)

// Bird is the player avatar. Only its vertical position changes during play.
type Bird struct {
	Position core.Vec2
	Speed    float64 // units/s, positive is up
	Tilt     float64 // degrees, positive is nose up
}

// Spawn returns the position the bird rests at while Ready.
func Spawn(cfg config.Config) core.Vec2 {
	return core.V(cfg.Bird.OffsetX, cfg.Screen.MidY())
}

// Reset puts the bird back at rest on its spawn point.
func (b *Bird) Reset(cfg config.Config) {
	b.Position = Spawn(cfg)
	b.Speed = 0
	b.Tilt = 0
}

// Flap gives the bird its first jump when an episode starts.
func (b *Bird) Flap(cfg config.Config) {
	b.Speed = cfg.Bird.JumpSpeed
}

// Freeze stops vertical motion when play ends.
func (b *Bird) Freeze() {
	b.Speed = 0
}

// Grounded reports whether the bird has come to rest on the ground.
func (b *Bird) Grounded(cfg config.Config) bool {
	return b.Position.Y <= cfg.Screen.GroundTop()
}

// Update integrates one tick of motion. jumped must only be true for a tap
// received while playing.
func (b *Bird) Update(dt float64, jumped bool, state GameState, cfg config.Config) {
	if state == StateReady {
		return
	}
	bc := cfg.Bird

	if jumped {
		b.Speed = bc.JumpSpeed
	} else {
		b.Speed += bc.Gravity * dt
		if b.Speed < bc.MaxFallSpeed {
			b.Speed = bc.MaxFallSpeed
		}
	}

	b.Position.Y += b.Speed * dt

	ceiling := cfg.Screen.Height - bc.Radius
	if b.Position.Y > ceiling {
		b.Speed = 0
	}
	b.Position.Y = core.ClampF(b.Position.Y, cfg.Screen.GroundTop(), ceiling)

	switch {
	case b.Speed > 0:
		b.Tilt += bc.TiltUpRate * dt
	case b.Speed < bc.DiveThreshold:
		b.Tilt -= bc.TiltDownRate * dt
	}
	b.Tilt = core.ClampF(b.Tilt, bc.TiltMin, bc.TiltMax)
}

// Collider returns the bird's collision circle as a bounding box, used by
// renderers that work in cells.
func (b *Bird) Collider(cfg config.Config) core.Box {
	d := cfg.Bird.Radius * 2
	return core.NewBox(b.Position, d, d)
}
