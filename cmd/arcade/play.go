package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var flagChallenge int

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Modes:
  2048          - Classic: reach 2048, then keep going if you like
  2048_endless  - No target, play until the board locks up

Controls:
  Arrows/WASD/HJKL - Slide tiles
  U/Backspace      - Undo
  C                - Keep going after reaching the target
  P/Esc            - Pause
  R                - New game
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Fewer 4s, unlimited undo
  normal - Standard 4s, 10 undos
  hard   - More 4s, no undo
  fixed  - Keep the values from the config file

Examples:
  arcade play 2048
  arcade play 2048 --challenge 5
  arcade play 2048_endless --difficulty hard
  arcade play 2048 --config ./my-2048.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagChallenge, "challenge", 0, fmt.Sprintf("Play a challenge (1-%d) in classic mode", t2048.ChallengeCount()))
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available modes.")
		os.Exit(1)
	}
	if flagChallenge != 0 && (gameID != t2048.IDClassic || t2048.GetChallenge(flagChallenge) == nil) {
		fail("--challenge takes 1-%d and only works with mode %s", t2048.ChallengeCount(), t2048.IDClassic)
	}

	logger, closeLog := newLogger(true)
	defer closeLog()
	gameCfg := loadGameConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}
	if g, ok := game.(*t2048.Game); ok && flagChallenge > 0 {
		g.SetChallenge(flagChallenge)
	}

	store := openStore(logger)
	svc := localServices(store, gameCfg, logger)

	runErr := tui.Run(game, svc, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
