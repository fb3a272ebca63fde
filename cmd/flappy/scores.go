package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mystal/flappy-bevy/internal/config"
	"github.com/mystal/flappy-bevy/internal/platform/tui"
	"github.com/mystal/flappy-bevy/internal/storage"
)

var (
	flagScoresPlain bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 runs. In a terminal this opens an interactive
table; tab switches between difficulties. When piped, a plain list is printed.

Examples:
  flappy scores
  flappy scores --difficulty hard
  flappy scores --plain
  flappy scores --clear --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain list even in a terminal")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete recorded runs (all, or --difficulty only)")
}

func runScores(_ *cobra.Command, _ []string) {
	// Here an empty difficulty means every difficulty.
	difficulty := ""
	if flagDifficulty != "" {
		p, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fail("%v", err)
		}
		difficulty = string(p)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(difficulty); err != nil {
			fail("clearing scores: %v", err)
		}
		fmt.Println("Scores cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagScoresPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, difficulty, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	if err := printScores(store, difficulty); err != nil {
		fail("%v", err)
	}
}

func printScores(store *storage.Store, difficulty string) error {
	runs, err := store.TopRuns(difficulty, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := "all difficulties"
	if difficulty != "" {
		title = difficulty
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-12s  %-8s  %s\n", "Rank", "Score", "Player", "Mode", "Date")
	fmt.Printf("  %-4s  %-6s  %-12s  %-8s  %s\n", "----", "-----", "------", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-12s  %-8s  %s\n",
			i+1, r.Score, r.Player, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(difficulty)
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Best: %d   Runs: %d   Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	}
	return nil
}
