package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/leaderboard"
)

var flagLeaderboardLimit int

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard [category]",
	Short: "Show a leaderboard",
	Long: fmt.Sprintf(`Rank players in one category (default: score).

Categories: %s

Examples:
  arcade leaderboard
  arcade leaderboard tile
  arcade leaderboard winRate --limit 5`, categoryNames()),
	Args: cobra.MaximumNArgs(1),
	Run:  runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().IntVar(&flagLeaderboardLimit, "limit", 0, "Number of entries (0 = configured default)")
}

func categoryNames() string {
	names := make([]string, len(leaderboard.Categories))
	for i, c := range leaderboard.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func runLeaderboard(_ *cobra.Command, args []string) {
	category := leaderboard.CategoryScore
	if len(args) == 1 {
		c, err := leaderboard.ParseCategory(args[0])
		if err != nil {
			fail("%v (use %s)", err, categoryNames())
		}
		category = c
	}

	logger, closeLog := newLogger(false)
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	svc := localServices(store, loadGameConfig(), logger)

	board, err := svc.Leaderboard()
	if err != nil {
		fail("loading leaderboard: %v", err)
	}
	entries, err := board.Top(category, flagLeaderboardLimit)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Leaderboard - %s\n", category.Label())
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("Nobody qualifies for this ranking yet.")
		return
	}

	fmt.Printf("  %-5s  %-20s  %s\n", "Rank", "Player", category.Label())
	fmt.Printf("  %-5s  %-20s  %s\n", "----", "------", strings.Repeat("-", len(category.Label())))
	for _, e := range entries {
		marker := " "
		if e.IsCurrentUser {
			marker = "*"
		}
		fmt.Printf("%s %-5s  %-20s  %s\n", marker, fmt.Sprintf("#%d", e.Rank), e.Username, e.Value)
	}

	fmt.Println()
	if rank, total, ok := board.UserRank(category); ok {
		fmt.Printf("Your rank: #%d of %d\n", rank, total)
	} else {
		fmt.Println("You are not ranked in this category yet.")
	}
}
