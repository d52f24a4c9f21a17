// arcade plays 2048 in the terminal, locally or over SSH.
//
// Usage:
//
//	arcade list                  - List game modes
//	arcade play <mode>           - Play a mode directly
//	arcade menu                  - Start the interactive menu
//	arcade serve                 - Start SSH server (and optional HTTP API)
//	arcade scores <mode>         - Show high scores for a mode
//	arcade stats                 - Show lifetime statistics
//	arcade profile [set <name>]  - Show or change the username
//	arcade leaderboard [cat]     - Show a leaderboard category
//	arcade move <dir> --grid ... - Apply one move to a grid
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom 2048 config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "2048 in your terminal",
	Long: `Slide the tiles, merge equal numbers and reach the target tile.

Available commands:
  list         - Show the game modes
  play         - Play a mode directly
  menu         - Interactive menu with challenges, leaderboard and profile
  serve        - Start SSH server for remote play
  scores       - View high scores
  stats        - View lifetime statistics
  profile      - Show or change your username
  leaderboard  - View rankings
  move         - Apply a single move to a grid (debugging)

Examples:
  arcade play 2048
  arcade play 2048 --challenge 3
  arcade play 2048_endless --difficulty hard
  arcade menu
  arcade serve --ssh :2222 --http :8080
  arcade leaderboard winRate --limit 5
  arcade move left --grid "2,2,0,0/0,0,0,0/0,0,0,0/0,0,0,0"`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom 2048 config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (TUI commands log nowhere otherwise)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(moveCmd)
}
