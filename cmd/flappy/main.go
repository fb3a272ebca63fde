// flappy is a one-button flying game for the terminal, the desktop and SSH.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy window            - Play in a desktop window
//	flappy serve             - Start SSH server for remote play
//	flappy scores            - Show high scores
//	flappy config dump       - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.flappy/scores.db)
//	--config <path>       - Use a specific config file
//	--difficulty <name>   - easy, normal or hard
//	--verbose             - Log at debug level
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mystal/flappy-bevy/internal/config"
	"github.com/mystal/flappy-bevy/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap between the pipes",
	Long: `Flappy is a one-button game: tap to flap, fly through the gaps,
and every pipe pair you pass scores a point.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Inspect the configuration

Examples:
  flappy play
  flappy play --difficulty hard
  flappy window
  flappy serve --ssh :2222
  flappy scores`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagFPS < 1 {
			return fmt.Errorf("--fps must be at least 1, got %d", flagFPS)
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard (default: from config)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Logs go to --log-file when set and to
// fallback otherwise. The returned func closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadGameConfig loads the config file and applies the difficulty preset.
// The preset comes from --difficulty, falling back to the file.
func loadGameConfig() (config.Config, config.Preset, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	name := flagDifficulty
	if name == "" {
		name = string(cfg.Difficulty)
	}
	preset, err := config.ParsePreset(name)
	if err != nil {
		return cfg, "", err
	}

	cfg = config.ApplyPreset(cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, "", fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return cfg, preset, nil
}

// openWatcher watches the config file in use, if there is one. Reload is a
// convenience, so failures are logged and ignored.
func openWatcher(logger *log.Logger) *config.Watcher {
	path := config.Locate(flagConfig)
	if path == "" {
		return nil
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		logger.Warn("config hot reload disabled", "path", path, "err", err)
		return nil
	}
	logger.Debug("watching config", "path", path)
	return w
}

// openStore opens the scores database. Playing works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		return nil
	}
	return store
}

// playerName is the name runs are saved under.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
