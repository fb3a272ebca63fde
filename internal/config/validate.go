package config

import (
	"errors"
	"fmt"
)

// Validate reports every out-of-range value in cfg. A config that passes
// can drive a session without further checks.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	s, b, p := c.Screen, c.Bird, c.Pipes
	check(s.Width > 0 && s.Height > 0, "screen: size %vx%v must be positive", s.Width, s.Height)
	check(s.GroundOffset >= 0, "screen: ground_offset %v must not be negative", s.GroundOffset)
	check(s.GroundTop() < s.Height-b.Radius, "screen: ground top %v must be below ceiling %v", s.GroundTop(), s.Height-b.Radius)

	check(b.Radius > 0, "bird: radius %v must be positive", b.Radius)
	check(b.Gravity < 0, "bird: gravity %v must be negative", b.Gravity)
	check(b.MaxFallSpeed < 0, "bird: max_fall_speed %v must be negative", b.MaxFallSpeed)
	check(b.JumpSpeed > 0, "bird: jump_speed %v must be positive", b.JumpSpeed)
	check(b.DiveThreshold <= 0, "bird: dive_threshold %v must not be positive", b.DiveThreshold)
	check(b.TiltMin < b.TiltMax, "bird: tilt range [%v, %v] is inverted", b.TiltMin, b.TiltMax)
	check(b.FlapFrameTicks > 0, "bird: flap_frame_ticks %d must be positive", b.FlapFrameTicks)

	check(p.Count > 0, "pipes: count %d must be positive", p.Count)
	check(p.Speed > 0, "pipes: speed %v must be positive", p.Speed)
	check(p.RecycleX < p.SpawnX, "pipes: recycle_x %v must be left of spawn_x %v", p.RecycleX, p.SpawnX)
	check(p.Spacing > 0, "pipes: spacing %v must be positive", p.Spacing)
	check(p.Width > 0 && p.SegmentHeight > 0, "pipes: segment %vx%v must be positive", p.Width, p.SegmentHeight)
	check(p.GapSize > 0, "pipes: gap_size %v must be positive", p.GapSize)
	check(p.GapRange >= 0, "pipes: gap_range %v must not be negative", p.GapRange)
	check(p.GapMin <= p.GapMax, "pipes: gap bounds [%v, %v] are inverted", p.GapMin, p.GapMax)
	check(p.GapMin >= s.GroundTop() && p.GapMax <= s.Height, "pipes: gap bounds [%v, %v] leave the playfield", p.GapMin, p.GapMax)
	check(p.ZoneHalfWidth > 0, "pipes: zone_half_width %v must be positive", p.ZoneHalfWidth)

	check(c.Camera.Decay > 0, "camera: decay %v must be positive", c.Camera.Decay)
	check(c.Camera.CrashTrauma >= 0 && c.Camera.CrashTrauma <= 1, "camera: crash_trauma %v must be in [0, 1]", c.Camera.CrashTrauma)

	_, err := ParsePreset(string(c.Difficulty))
	check(err == nil, "difficulty: %q is not a preset", c.Difficulty)
	check(c.Window.Scale > 0, "window: scale %d must be positive", c.Window.Scale)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}
