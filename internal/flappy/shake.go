package flappy

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/mystal/flappy-bevy/internal/config"
	"github.com/mystal/flappy-bevy/internal/core"
)

// ShakeOffset is the camera displacement for one frame.
type ShakeOffset struct {
	Angle float64 // degrees
	X, Y  float64 // world units
}

// CameraShake turns accumulated trauma into a decaying, smoothly varying
// camera offset. Shake strength is trauma squared.
type CameraShake struct {
	cfg     config.Camera
	trauma  float64
	elapsed float64
	offset  ShakeOffset

	angle, dx, dy noise1D
}

// NewCameraShake seeds three independent noise channels from rng.
func NewCameraShake(cfg config.Camera, rng *rand.Rand) *CameraShake {
	return &CameraShake{
		cfg:   cfg,
		angle: newNoise1D(rng),
		dx:    newNoise1D(rng),
		dy:    newNoise1D(rng),
	}
}

// AddTrauma implements Shaker.
func (c *CameraShake) AddTrauma(amount float64) {
	c.trauma = core.ClampF(c.trauma+amount, 0, 1)
}

// Trauma returns the current trauma in [0, 1].
func (c *CameraShake) Trauma() float64 {
	return c.trauma
}

// Configure swaps the tuning without touching accumulated trauma.
func (c *CameraShake) Configure(cfg config.Camera) {
	c.cfg = cfg
}

// Update advances time by dt and recomputes the offset.
func (c *CameraShake) Update(dt float64) {
	c.elapsed += dt
	if c.trauma <= 0 {
		c.offset = ShakeOffset{}
		return
	}

	shake := c.trauma * c.trauma
	t := c.elapsed * c.cfg.NoiseScale
	c.offset = ShakeOffset{
		Angle: c.cfg.MaxAngle * shake * c.angle.at(t),
		X:     c.cfg.MaxOffset * shake * c.dx.at(t),
		Y:     c.cfg.MaxOffset * shake * c.dy.at(t),
	}

	c.trauma = core.ClampF(c.trauma-dt/c.cfg.Decay, 0, 1)
}

// Offset returns the offset computed by the last Update.
func (c *CameraShake) Offset() ShakeOffset {
	return c.offset
}

// noise1D is one Perlin channel sampled along time, starting at a seeded
// offset.
type noise1D struct {
	perlin *perlin.Perlin
	offset float64
}

const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 3
)

func newNoise1D(rng *rand.Rand) noise1D {
	return noise1D{
		perlin: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, rng.Int63()),
		offset: rng.Float64() * 256,
	}
}

func (n noise1D) at(t float64) float64 {
	return core.ClampF(n.perlin.Noise1D(t+n.offset), -1, 1)
}
