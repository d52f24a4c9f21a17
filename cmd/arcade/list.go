package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/session"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game modes",
	Long: `Shows every registered 2048 mode with the rules it would start with
under the current --config and --difficulty, followed by the challenges.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	modes := registry.List()
	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	cfg := loadGameConfig()

	fmt.Printf("Modes (%dx%d grid):\n\n", cfg.Grid.Size, cfg.Grid.Size)
	fmt.Printf("  %-14s %-16s %-8s %s\n", "ID", "Title", "Target", "Undo")
	for _, g := range modes {
		mode := t2048.ModeClassic
		if g.ID == t2048.IDEndless {
			mode = t2048.ModeEndless
		}
		rules := t2048.RulesFor(cfg, mode, nil)
		fmt.Printf("  %-14s %-16s %-8s %s\n", g.ID, g.Title, target(rules.WinValue), undoLimit(rules))
	}

	fmt.Println()
	fmt.Println("Challenges (arcade play 2048 --challenge <n>):")
	fmt.Println()
	for _, ch := range t2048.Challenges {
		fmt.Printf("  %2d  %-18s  target %-6s  4s %2.0f%%\n", ch.ID, ch.Name, humanize.Comma(int64(ch.Target)), ch.Spawn4*100)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a mode.")
}

func target(winValue int) string {
	if winValue <= 0 {
		return "none"
	}
	return humanize.Comma(int64(winValue))
}

func undoLimit(r session.Rules) string {
	switch {
	case r.NoUndo:
		return "off"
	case r.HistoryLimit == 0:
		return "unlimited"
	}
	return fmt.Sprintf("%d steps", r.HistoryLimit)
}
