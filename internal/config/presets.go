package config

import "fmt"

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset converts a user supplied name into a Preset.
func ParsePreset(name string) (Preset, error) {
	switch p := Preset(name); p {
	case PresetEasy, PresetNormal, PresetHard:
		return p, nil
	case "":
		return PresetNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset returns cfg adjusted for the given difficulty. Normal leaves
// the configured values untouched; easy and hard scale them.
func ApplyPreset(cfg Config, p Preset) Config {
	switch p {
	case PresetEasy:
		cfg.Pipes.GapSize *= 1.2
		cfg.Pipes.GapRange *= 0.66
		cfg.Pipes.Speed *= 0.85
	case PresetHard:
		cfg.Pipes.GapSize *= 0.86
		cfg.Pipes.GapRange *= 1.33
		cfg.Pipes.Speed *= 1.2
	}
	cfg.Difficulty = p
	return cfg
}

// ResolvePreset applies override when set, otherwise the preset named in cfg.
// A config without a preset plays normal.
func ResolvePreset(cfg Config, override Preset) Config {
	p := override
	if p == "" {
		p = cfg.Difficulty
	}
	if p == "" {
		p = PresetNormal
	}
	return ApplyPreset(cfg, p)
}
