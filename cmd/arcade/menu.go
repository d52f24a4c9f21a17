package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu",
	Long: `Open the main menu: classic and endless games, challenges,
the leaderboard, your high scores and your profile.

On first start you are asked for a username.`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(true)
	defer closeLog()
	gameCfg := loadGameConfig()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	svc := localServices(store, gameCfg, logger)
	if err := tui.RunSession(svc, runtimeConfig(), localUsername()); err != nil {
		logger.Error("menu failed", "error", err)
		fail("%v", err)
	}
}
