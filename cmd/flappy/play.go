package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mystal/flappy-bevy/internal/core"
	"github.com/mystal/flappy-bevy/internal/flappy"
	"github.com/mystal/flappy-bevy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W/Click  - Flap
  P                 - Pause
  R                 - Restart
  ?                 - Help
  Ctrl+S            - Screenshot
  Q/Esc/Ctrl+C      - Quit

Edits to the config file are picked up the next time the bird is
waiting on the ground.

Examples:
  flappy play
  flappy play --difficulty easy
  flappy play --config ./my-flappy.yaml --log-file flappy.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// The alt screen owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, preset, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	watcher := openWatcher(logger)
	if watcher != nil {
		defer watcher.Close()
	}

	store := openStore(logger)

	opts := tui.Options{
		Store:   store,
		Watcher: watcher,
		Logger:  logger,
		Player:  playerName(),
	}
	// An explicit --difficulty survives reloads.
	if flagDifficulty != "" {
		opts.Preset = preset
	}

	game := flappy.NewGame(cfg, flappy.WithLogger(logger))
	runErr := tui.Run(game, rc, string(preset), opts)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("running game: %v", runErr)
	}
	logger.Info("bye", "best", game.Best(), "difficulty", preset)
}
