// starcatch is a terminal arcade game: catch stars, dodge bouncing enemies.
//
// Usage:
//
//	starcatch play            - Play in the terminal
//	starcatch sim             - Run a headless deterministic simulation
//	starcatch scores          - Show high scores
//	starcatch serve           - Start SSH server for remote play
//	starcatch list            - List available games
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.starcatch/scores.db)
//	--config <path>  - Load game settings from a YAML file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/games/starcatch"
	"github.com/vovakirdan/starcatch/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starcatch",
	Short: "Star Catcher - catch stars, dodge enemies",
	Long: `Star Catcher is a terminal arcade game. Steer the player around the
arena to collect stars while enemies bounce off the walls. One touch from
an enemy ends the game.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless deterministic simulation
  scores   - View high scores
  serve    - Start SSH server for remote play
  list     - Show all available games

Examples:
  starcatch play
  starcatch play --seed 42 --sound
  starcatch sim --ticks 3600 --policy chase
  starcatch scores --tui
  starcatch serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadGameConfig loads and installs the game configuration. An invalid
// configuration is fatal.
func loadGameConfig() config.GameConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	starcatch.SetConfig(cfg)
	return cfg
}

// openStore opens score storage, warning and continuing without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
