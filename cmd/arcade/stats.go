package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime statistics",
	Long:  `Display games played and won, win rate, best tile and best score of the local player.`,
	Args:  cobra.NoArgs,
	Run:   runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	store := mustOpenStore()
	defer store.Close()
	svc := localServices(store, loadGameConfig(), logger)

	st, err := svc.Stats.Stats()
	if err != nil {
		fail("loading stats: %v", err)
	}
	best, err := svc.Stats.BestScore()
	if err != nil {
		fail("loading best score: %v", err)
	}

	fmt.Println("Statistics")
	fmt.Println()
	fmt.Printf("  %-14s %s\n", "Games played", humanize.Comma(int64(st.GamesPlayed)))
	fmt.Printf("  %-14s %s\n", "Games won", humanize.Comma(int64(st.GamesWon)))
	fmt.Printf("  %-14s %.1f%%\n", "Win rate", st.WinRatePercent())
	fmt.Printf("  %-14s %s\n", "Best tile", humanize.Comma(int64(st.BestTile)))
	fmt.Printf("  %-14s %s\n", "Best score", humanize.Comma(int64(best)))
	fmt.Printf("  %-14s %s\n", "Total moves", humanize.Comma(int64(st.TotalMoves)))
	fmt.Printf("  %-14s %.1f\n", "Average moves", st.AverageMoves())
}
