package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starcatch/internal/games/starcatch"
	"github.com/vovakirdan/starcatch/internal/platform/tui"
	"github.com/vovakirdan/starcatch/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores with the seed and length of each run.

Examples:
  starcatch scores
  starcatch scores --limit 25
  starcatch scores --all
  starcatch scores --tui
  starcatch scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded run (ignores --limit)")
}

func runScores(_ *cobra.Command, _ []string) {
	if code := showScores(); code != 0 {
		os.Exit(code)
	}
}

// showScores returns the process exit code after the store is closed.
func showScores() int {
	gameID := starcatch.GameID
	title := starcatch.New().Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		return 1
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println("Scores cleared.")
		return 0
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, gameID, title, flagFPS, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return 1
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'starcatch play' to set the first high score!")
		return 0
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-20s  %s\n", "Rank", "Stars", "Ticks", "Seed", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-20s  %s\n", "----", "-----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-8d  %-20d  %s\n", i+1, entry.Score, entry.Ticks, entry.Seed, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return 0
}
