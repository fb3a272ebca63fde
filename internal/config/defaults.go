package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// Default returns the hardcoded configuration. It matches the embedded YAML
// and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Screen: Screen{
			Width:        180,
			Height:       320,
			GroundOffset: 32,
		},
		Bird: Bird{
			Radius:         7,
			OffsetX:        30,
			Gravity:        -650,
			MaxFallSpeed:   -400,
			JumpSpeed:      230,
			TiltUpRate:     600,
			TiltDownRate:   480,
			DiveThreshold:  -110,
			TiltMin:        -90,
			TiltMax:        30,
			FlapFrameTicks: 6,
		},
		Pipes: Pipes{
			Count:         2,
			Speed:         80,
			SpawnX:        210,
			RecycleX:      -30,
			InitX:         200,
			Spacing:       120,
			Width:         40,
			SegmentHeight: 300,
			GapSize:       70,
			GapRange:      60,
			GapMin:        120,
			GapMax:        250,
			ZoneOffsetX:   20,
			ZoneHalfWidth: 10,
		},
		Camera: Camera{
			Decay:       1,
			MaxAngle:    5,
			MaxOffset:   8,
			NoiseScale:  10,
			CrashTrauma: 0.5,
		},
		Difficulty: PresetNormal,
		Window: WindowOpts{
			Scale: 2,
			Title: "Flappy Bevy",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
