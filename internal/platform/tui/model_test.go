package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mystal/flappy-bevy/internal/config"
	"github.com/mystal/flappy-bevy/internal/core"
	"github.com/mystal/flappy-bevy/internal/flappy"
	"github.com/mystal/flappy-bevy/internal/storage"
)

func newTestModel(t *testing.T, opts Options) (Model, *flappy.Game) {
	t.Helper()
	game := flappy.NewGame(config.Default())
	rc := core.RuntimeConfig{ScreenW: 60, ScreenH: 30, TickRate: 60, Seed: 7}
	m := NewModel(game, rc, "normal", opts)
	m.Init()
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelTapStartsGame(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg{})

	if got := game.Session().State(); got != flappy.StatePlaying {
		t.Errorf("state after tap = %v, want Playing", got)
	}
	if !m.inputFrame.Empty() {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelHelpSwallowsTaps(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m = update(t, m, runeKey('?'))
	if !m.showHelp {
		t.Fatal("help should be open")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg{})
	if got := game.Session().State(); got != flappy.StateReady {
		t.Errorf("state = %v, want Ready while help is open", got)
	}

	// Esc closes the overlay instead of quitting
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHelp || m.quitting {
		t.Errorf("showHelp=%v quitting=%v, want both false", m.showHelp, m.quitting)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !next.(Model).quitting {
		t.Error("model should be quitting")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("View after quit = %q, want empty", v)
	}
}

func TestModelResizeKeepsEpisode(t *testing.T) {
	m, game := newTestModel(t, Options{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	if m.screen.Width() != 80 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 80x40", m.screen.Width(), m.screen.Height())
	}
	if got := game.Session().State(); got != flappy.StatePlaying {
		t.Errorf("resize should not restart, state = %v", got)
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	m, _ := newTestModel(t, Options{Store: store, Player: "ann"})
	m.gameState = core.GameState{Score: 3, GameOver: true}
	m.saveScore()

	best, err := store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if best != 3 {
		t.Errorf("HighScore = %d, want 3", best)
	}

	// Zero scores are not recorded
	m.gameState = core.GameState{Score: 0, GameOver: true}
	m.saveScore()
	runs, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].Player != "ann" {
		t.Errorf("runs = %+v, want one run by ann", runs)
	}
}

func TestModelAppliesReloadedConfig(t *testing.T) {
	m, game := newTestModel(t, Options{Preset: config.PresetHard})

	cfg := config.Default()
	m = update(t, m, configMsg{cfg: cfg})

	want := config.ApplyPreset(config.Default(), config.PresetHard).Pipes.Speed
	if got := game.Session().Config().Pipes.Speed; got != want {
		t.Errorf("pipe speed = %v, want %v", got, want)
	}
	if m.difficulty != "hard" {
		t.Errorf("difficulty = %q, want hard", m.difficulty)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestModel(t, Options{ScreenshotDir: dir})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	matches, err := filepath.Glob(filepath.Join(dir, "flappy_*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("screenshots = %v, want one file", matches)
	}
	if !strings.HasPrefix(m.status, "saved ") {
		t.Errorf("status = %q", m.status)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "hi", core.ColorText)
	s.DrawText(0, 1, "yo", core.Color(200))

	out := RenderScreen(s)
	if !strings.Contains(out, "hi") || !strings.Contains(out, "yo") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("newlines = %d, want 1", got)
	}
}

func TestModelReloadKeepsFileDifficulty(t *testing.T) {
	m, game := newTestModel(t, Options{})

	cfg := config.Default()
	cfg.Difficulty = config.PresetEasy
	m = update(t, m, configMsg{cfg: cfg})

	want := config.ApplyPreset(cfg, config.PresetEasy).Pipes.Speed
	if got := game.Session().Config().Pipes.Speed; got != want {
		t.Errorf("pipe speed = %v, want %v", got, want)
	}
	if m.difficulty != "easy" {
		t.Errorf("difficulty = %q, want easy", m.difficulty)
	}
}
