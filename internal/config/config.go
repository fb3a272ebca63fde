// Package config provides YAML-based configuration loading, difficulty
// presets and validation for the flappy game.
package config

// Config contains all tunable parameters of a flappy session.
type Config struct {
	Screen     Screen     `yaml:"screen"`
	Bird       Bird       `yaml:"bird"`
	Pipes      Pipes      `yaml:"pipes"`
	Camera     Camera     `yaml:"camera"`
	Difficulty Preset     `yaml:"difficulty"`
	Window     WindowOpts `yaml:"window"`
}

// Screen defines the world dimensions in world units.
type Screen struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // ground top sits at twice this value
}

// GroundTop returns the lowest y the bird may occupy.
func (s Screen) GroundTop() float64 {
	return s.GroundOffset * 2
}

// MidY returns the vertical midpoint of the screen.
func (s Screen) MidY() float64 {
	return s.Height / 2
}

// Bird defines the bird's kinematic parameters.
type Bird struct {
	Radius         float64 `yaml:"radius"`
	OffsetX        float64 `yaml:"offset_x"`
	Gravity        float64 `yaml:"gravity"`        // negative, units/s²
	MaxFallSpeed   float64 `yaml:"max_fall_speed"` // negative floor, units/s
	JumpSpeed      float64 `yaml:"jump_speed"`
	TiltUpRate     float64 `yaml:"tilt_up_rate"`   // degrees/s while rising
	TiltDownRate   float64 `yaml:"tilt_down_rate"` // degrees/s while diving
	DiveThreshold  float64 `yaml:"dive_threshold"` // speed below which the nose drops
	TiltMin        float64 `yaml:"tilt_min"`
	TiltMax        float64 `yaml:"tilt_max"`
	FlapFrameTicks int     `yaml:"flap_frame_ticks"` // wing animation frame length
}

// Pipes defines the pipe pool, its scrolling and gap generation.
type Pipes struct {
	Count         int     `yaml:"count"`
	Speed         float64 `yaml:"speed"`
	SpawnX        float64 `yaml:"spawn_x"`
	RecycleX      float64 `yaml:"recycle_x"`
	InitX         float64 `yaml:"init_x"`
	Spacing       float64 `yaml:"spacing"`
	Width         float64 `yaml:"width"`
	SegmentHeight float64 `yaml:"segment_height"`
	GapSize       float64 `yaml:"gap_size"`
	GapRange      float64 `yaml:"gap_range"` // max distance between successive gap centers
	GapMin        float64 `yaml:"gap_min"`
	GapMax        float64 `yaml:"gap_max"`
	ZoneOffsetX   float64 `yaml:"zone_offset_x"`
	ZoneHalfWidth float64 `yaml:"zone_half_width"`
}

// Camera defines the cosmetic shake reaction to a crash.
type Camera struct {
	Decay       float64 `yaml:"decay"` // seconds for full trauma to fade
	MaxAngle    float64 `yaml:"max_angle"`
	MaxOffset   float64 `yaml:"max_offset"`
	NoiseScale  float64 `yaml:"noise_scale"`
	CrashTrauma float64 `yaml:"crash_trauma"`
}

// WindowOpts defines the desktop frontend presentation.
type WindowOpts struct {
	Scale int    `yaml:"scale"`
	Title string `yaml:"title"`
}
