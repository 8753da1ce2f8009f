package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starcatch/internal/audio"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/games/starcatch"
	"github.com/vovakirdan/starcatch/internal/platform/tui"
	"github.com/vovakirdan/starcatch/internal/registry"
	"github.com/vovakirdan/starcatch/internal/report"
	"github.com/vovakirdan/starcatch/internal/storage"
)

var (
	flagSound   bool
	flagLogPath string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Star Catcher",
	Long: `Start a game in the terminal.

Controls:
  WASD/Arrows  - Move (diagonals allowed)
  P            - Pause
  R            - Restart (after game over)
  Q/Esc        - Quit
  Ctrl+S       - Save a text screenshot

Examples:
  starcatch play
  starcatch play --seed 42
  starcatch play --sound
  starcatch play --config ./my-arena.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects (overrides config)")
	playCmd.Flags().StringVar(&flagLogPath, "log", "~/.starcatch/starcatch.log", "Log file path")
}

func runPlay(cmd *cobra.Command, _ []string) {
	if code := play(cmd); code != 0 {
		os.Exit(code)
	}
}

// play runs one terminal session and returns the process exit code, so
// deferred cleanup runs before the process exits.
func play(cmd *cobra.Command) int {
	gameCfg := loadGameConfig()
	if cmd.Flags().Changed("sound") {
		gameCfg.Sound.Enabled = flagSound
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	logger, closeLog := openLogFile(flagLogPath)
	defer closeLog()

	game, err := registry.Create(starcatch.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		return 1
	}

	store := openStore()
	var saver report.ScoreSaver
	if store != nil {
		saver = store
		defer store.Close()
	}

	reporter := report.New(logger, saver, game.ID())
	reporter.Attach(game)

	player := audio.NewPlayer(gameCfg.Sound.Enabled, flagSeed)
	if err := player.Initialize(); err != nil {
		logger.Warn("audio unavailable", "error", err)
	}
	defer player.Cleanup()
	player.Attach(game)

	opts := tui.Options{
		OnReset: func(rc core.RuntimeConfig) {
			reporter.SetSeed(rc.Seed)
			logger.Info("game started", "seed", rc.Seed, "tick_rate", rc.TickRate)
		},
		ScreenshotDir: expandHome("~/.starcatch/screenshots"),
	}

	if err := tui.Run(game, cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		return 1
	}

	if err := game.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if game.State().GameOver {
		fmt.Printf("Final score: %d\n", reporter.LastFinalScore())
		printBest(store, game.ID())
	}
	return 0
}

// printBest prints the stored high score, if storage is available.
func printBest(store *storage.Store, gameID string) {
	if store == nil {
		return
	}
	best, err := store.HighScore(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	fmt.Printf("Best score: %d\n", best)
}

// openLogFile returns a logger writing to path. A terminal UI owns the
// screen, so logs never go to stderr here.
func openLogFile(path string) (*log.Logger, func()) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err == nil {
			logger := log.NewWithOptions(f, log.Options{
				ReportTimestamp: true,
				Prefix:          "starcatch",
			})
			return logger, func() { f.Close() }
		}
	}
	return log.New(io.Discard), func() {}
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
