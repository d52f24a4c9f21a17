package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

var flagGrid string

var moveCmd = &cobra.Command{
	Use:   "move <direction>",
	Short: "Apply one move to a grid",
	Long: `Slide the tiles of a grid once and print the result.

The grid is given as rows separated by "/" and cells by ",".
Direction is one of up, down, left, right.

Examples:
  arcade move left --grid "2,2,0,0/0,0,0,0/0,0,0,0/0,0,0,0"
  arcade move up --grid "2,0/2,4"`,
	Args: cobra.ExactArgs(1),
	Run:  runMove,
}

func init() {
	moveCmd.Flags().StringVar(&flagGrid, "grid", "", "Grid to move (required)")
	//nolint:errcheck // The flag is defined above
	moveCmd.MarkFlagRequired("grid")
}

func runMove(_ *cobra.Command, args []string) {
	dir, err := engine.ParseDirection(args[0])
	if err != nil {
		fail("%v", err)
	}
	g, err := engine.ParseGrid(flagGrid)
	if err != nil {
		fail("%v", err)
	}

	res, err := engine.Move(g, dir)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Move %s\n\n", dir)
	printGrid(res.Grid)
	fmt.Println()
	fmt.Printf("Grid:  %s\n", res.Grid)
	fmt.Printf("Score: +%d\n", res.Score)
	fmt.Printf("Moved: %t\n", res.Moved)
	fmt.Printf("Can move: %t\n", engine.CanMove(res.Grid))
}

func printGrid(g engine.Grid) {
	width := len(fmt.Sprint(g.MaxTile()))
	for _, row := range g.Rows() {
		cells := make([]string, len(row))
		for i, v := range row {
			if v == 0 {
				cells[i] = fmt.Sprintf("%*s", width, ".")
			} else {
				cells[i] = fmt.Sprintf("%*d", width, v)
			}
		}
		fmt.Println("  " + strings.Join(cells, " "))
	}
}
