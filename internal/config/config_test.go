package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded yaml = %+v, expected %+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
	if got := Default().Screen.GroundTop(); got != 64 {
		t.Errorf("GroundTop() = %v, expected 64", got)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"inverted gap bounds", func(c *Config) { c.Pipes.GapMin, c.Pipes.GapMax = 250, 120 }, "inverted"},
		{"upward gravity", func(c *Config) { c.Bird.Gravity = 10 }, "gravity"},
		{"no pipes", func(c *Config) { c.Pipes.Count = 0 }, "count"},
		{"recycle right of spawn", func(c *Config) { c.Pipes.RecycleX = 300 }, "recycle_x"},
		{"trauma above one", func(c *Config) { c.Camera.CrashTrauma = 2 }, "crash_trauma"},
		{"unknown preset", func(c *Config) { c.Difficulty = "insane" }, "difficulty"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %q, expected mention of %q", err, tc.want)
			}
		})
	}
}

func TestLoadFileKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("pipes:\n  speed: 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Pipes.Speed != 100 {
		t.Errorf("Pipes.Speed = %v, expected 100", cfg.Pipes.Speed)
	}
	if cfg.Bird.JumpSpeed != 230 {
		t.Errorf("Bird.JumpSpeed = %v, expected default 230", cfg.Bird.JumpSpeed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) = nil error, expected failure")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("bird:\n  gravity: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load(bad) = nil error, expected validation failure")
	}
}

func TestApplyPreset(t *testing.T) {
	base := Default()

	easy := ApplyPreset(base, PresetEasy)
	if easy.Pipes.GapSize <= base.Pipes.GapSize || easy.Pipes.Speed >= base.Pipes.Speed {
		t.Errorf("easy preset should widen gaps and slow pipes: %+v", easy.Pipes)
	}
	hard := ApplyPreset(base, PresetHard)
	if hard.Pipes.GapSize >= base.Pipes.GapSize || hard.Pipes.Speed <= base.Pipes.Speed {
		t.Errorf("hard preset should narrow gaps and speed pipes up: %+v", hard.Pipes)
	}
	if normal := ApplyPreset(base, PresetNormal); normal != base {
		t.Errorf("normal preset changed config: %+v", normal)
	}
	for _, p := range []Preset{PresetEasy, PresetNormal, PresetHard} {
		if err := ApplyPreset(base, p).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", p, err)
		}
	}
}

func TestResolvePreset(t *testing.T) {
	fromFile := Default()
	fromFile.Difficulty = PresetEasy
	unset := Default()
	unset.Difficulty = ""

	tests := []struct {
		name     string
		cfg      Config
		override Preset
		want     Preset
	}{
		{"override wins over file", fromFile, PresetHard, PresetHard},
		{"file choice without override", fromFile, "", PresetEasy},
		{"empty falls back to normal", unset, "", PresetNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePreset(tt.cfg, tt.override)
			if got.Difficulty != tt.want {
				t.Errorf("Difficulty = %q, want %q", got.Difficulty, tt.want)
			}
			want := ApplyPreset(tt.cfg, tt.want)
			if got.Pipes != want.Pipes {
				t.Errorf("Pipes = %+v, want %+v", got.Pipes, want.Pipes)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != PresetNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) = nil error")
	}
}

func TestWatcherPublishesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("pipes:\n  speed: 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("pipes:\n  speed: 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Configs:
		if cfg.Pipes.Speed != 120 {
			t.Errorf("reloaded Pipes.Speed = %v, expected 120", cfg.Pipes.Speed)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}
