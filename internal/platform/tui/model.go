package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/mystal/flappy-bevy/internal/config"
	"github.com/mystal/flappy-bevy/internal/core"
	"github.com/mystal/flappy-bevy/internal/storage"
)

// Options carries the collaborators of a Model. Every field is optional.
type Options struct {
	Store   *storage.Store
	Watcher *config.Watcher
	Logger  *log.Logger
	Player  string
	// Preset is applied to reloaded configs. Empty keeps the file's choice.
	Preset config.Preset
	// ScreenshotDir defaults to ~/.flappy/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	showHelp   bool
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
	difficulty string
	status     string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, difficulty string, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		difficulty: difficulty,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.loadBest()
	return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.opts.Watcher))
}

func (m Model) loadBest() {
	bt, ok := m.game.(BestTracker)
	if !ok || m.opts.Store == nil {
		return
	}
	best, err := m.opts.Store.HighScore(m.difficulty)
	if err != nil {
		m.opts.Logger.Warn("cannot load best score", "err", err)
		return
	}
	bt.SetBest(uint32(best))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.showHelp && MapMouse(msg) == core.ActionJump {
			m.inputFrame.Set(core.ActionJump)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case configMsg:
		return m.handleConfig(msg.cfg)

	case configErrMsg:
		m.opts.Logger.Warn("config reload rejected", "err", msg.err)
		m.status = "config rejected, see log"
		return m, waitForConfig(m.opts.Watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		if m.showHelp && !key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))) {
			m.showHelp = false
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case core.ActionNone:
	default:
		// The help overlay swallows gameplay input.
		if !m.showHelp {
			m.inputFrame.Set(action)
		}
	}
	return m, nil
}

// handleResize processes window resize events. The world keeps its size;
// only the cell mapping changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) saveScore() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveRun(m.opts.Player, m.difficulty, m.gameState.Score); err != nil {
		m.opts.Logger.Error("cannot save score", "err", err)
		return
	}
	m.opts.Logger.Info("score saved", "player", m.opts.Player, "score", m.gameState.Score)
}

func (m Model) handleConfig(cfg config.Config) (tea.Model, tea.Cmd) {
	next := waitForConfig(m.opts.Watcher)
	cfg = config.ResolvePreset(cfg, m.opts.Preset)

	rc, ok := m.game.(Reconfigurer)
	if !ok {
		return m, next
	}
	if err := rc.Reconfigure(cfg); err != nil {
		m.opts.Logger.Warn("config reload rejected", "err", err)
		m.status = "config rejected, see log"
		return m, next
	}
	m.difficulty = string(cfg.Difficulty)
	m.status = "config reloaded"
	m.opts.Logger.Info("config reloaded", "difficulty", cfg.Difficulty)
	return m, next
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("tui: cannot find home directory: %w", err)
		}
		dir = filepath.Join(home, ".flappy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	m.status = "saved " + filepath.Base(path)
	return nil
}

var helpBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("214")).
	Padding(1, 2)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" {
		m.screen.DrawText(0, m.screen.Height()-1, m.status, core.ColorDim)
	}
	frame := RenderScreen(m.screen)

	if m.showHelp {
		box := helpBoxStyle.Render(m.game.Title() + "\n\n" + m.help.View(m.keys))
		return lipgloss.Place(m.screen.Width(), m.screen.Height(), lipgloss.Center, lipgloss.Center, box)
	}
	return frame
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, cfg core.RuntimeConfig, difficulty string, opts Options) error {
	model := NewModel(game, cfg, difficulty, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

