package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mystal/flappy-bevy/internal/core"
	"github.com/mystal/flappy-bevy/internal/platform/window"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window.

Controls:
  Space/Up/Click/Touch  - Flap
  P                     - Pause
  R                     - Restart
  Esc                   - Quit

Examples:
  flappy window
  flappy window --scale 3`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 0, "Window scale factor (default: from config)")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, preset, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagScale > 0 {
		cfg.Window.Scale = flagScale
	}

	watcher := openWatcher(logger)
	if watcher != nil {
		defer watcher.Close()
	}
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	rc := core.RuntimeConfig{
		ScreenW:  int(cfg.Screen.Width),
		ScreenH:  int(cfg.Screen.Height),
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	opts := window.Options{
		Store:   store,
		Watcher: watcher,
		Logger:  logger,
		Player:  playerName(),
	}
	// An explicit --difficulty survives reloads.
	if flagDifficulty != "" {
		opts.Preset = preset
	}

	err = window.Run(cfg, rc, opts)
	if err != nil {
		logger.Error("window closed with error", "err", err)
		fail("%v", err)
	}
}
