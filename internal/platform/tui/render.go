package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

var (
	darkText  = lipgloss.Color("#776e65")
	lightText = lipgloss.Color("#f9f6f2")
)

func tileStyle(bg string, fg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(bg)).Foreground(fg).Bold(true)
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorGold:    lipgloss.NewStyle().Foreground(lipgloss.Color("#edc22e")).Bold(true),

	core.ColorTileEmpty: lipgloss.NewStyle().Background(lipgloss.Color("#cdc1b4")),
	core.ColorTile2:     tileStyle("#eee4da", darkText),
	core.ColorTile4:     tileStyle("#ede0c8", darkText),
	core.ColorTile8:     tileStyle("#f2b179", lightText),
	core.ColorTile16:    tileStyle("#f59563", lightText),
	core.ColorTile32:    tileStyle("#f67c5f", lightText),
	core.ColorTile64:    tileStyle("#f65e3b", lightText),
	core.ColorTile128:   tileStyle("#edcf72", lightText),
	core.ColorTile256:   tileStyle("#edcc61", lightText),
	core.ColorTile512:   tileStyle("#edc850", lightText),
	core.ColorTile1024:  tileStyle("#edc53f", lightText),
	core.ColorTile2048:  tileStyle("#edc22e", lightText),
	core.ColorTileSuper: tileStyle("#3c3a32", lightText),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
