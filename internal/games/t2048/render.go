package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth    = 7 // Width of each cell (including left border)
	cellHeight   = 2 // Height of each cell (including top border)
	hudHeight    = 4 // Title, score line, mode line, gap
	footerHeight = 2
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	n := g.sess.Grid().Size()
	boardW := n*cellWidth + 1 // +1 for right border
	boardH := n*cellHeight + 1
	board := core.NewRect((g.screenW-boardW)/2, hudHeight, boardW, boardH)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	g.renderFooter(dst, board)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// modeLabel names what the player is playing for.
func (g *Game) modeLabel() string {
	switch {
	case g.mode == ModeEndless:
		return "Endless"
	case g.challenge != nil:
		return fmt.Sprintf("Challenge %d: %s", g.challenge.ID, g.challenge.Name)
	default:
		return "Classic"
	}
}

func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := "2048"
	dst.DrawTextColor(board.X+(board.W-len(title))/2, 0, title, core.ColorGold)

	dst.DrawText(board.X, 1, fmt.Sprintf("Score: %d", g.sess.Score()))
	best := fmt.Sprintf("Best: %d", g.sess.BestScore())
	dst.DrawText(max(board.X, board.Right()-len(best)), 1, best)

	label := g.modeLabel()
	if target := g.sess.Rules().WinValue; target > 0 {
		label += fmt.Sprintf("  Target: %d", target)
	}
	dst.DrawTextColor(board.X, 2, label, core.ColorCyan)
	moves := fmt.Sprintf("Moves: %d", g.sess.Moves())
	dst.DrawText(max(board.X, board.Right()-len(moves)), 2, moves)
}

// renderBoard draws the grid lines, then fills each cell with its tile color.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	grid := g.sess.Grid()
	n := grid.Size()

	for y := range n + 1 {
		for x := range n + 1 {
			px := board.X + x*cellWidth
			py := board.Y + y*cellHeight
			dst.Set(px, py, junction(x, y, n))

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for row := range n {
		for col := range n {
			val := grid.At(row, col)
			inner := core.NewRect(
				board.X+col*cellWidth+1,
				board.Y+row*cellHeight+1,
				cellWidth-1,
				cellHeight-1,
			)
			color := core.TileColor(val)
			dst.FillRect(inner, ' ', color)
			if val == 0 {
				continue
			}

			text := strconv.Itoa(val)
			pad := max(0, (inner.W-len(text))/2)
			dst.DrawTextColor(inner.X+pad, inner.Y, text, color)

			if g.hasNew && g.newTile.Row == row && g.newTile.Col == col {
				dst.SetColor(inner.X, inner.Y, '•', color)
			}
		}
	}
}

// junction picks the box-drawing rune where grid lines meet.
func junction(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	default:
		return '┼'
	}
}

func (g *Game) renderFooter(dst *core.Screen, board core.Rect) {
	y := board.Bottom()
	if g.event != "" {
		dst.DrawTextCentered(y, g.event)
	}
	undo := "undo off"
	if !g.sess.Rules().NoUndo {
		undo = fmt.Sprintf("undo: %d", g.sess.HistoryLen())
	}
	dst.DrawTextColor(board.X, y+1, undo, core.ColorGray)
}

// renderOverlays draws pause, win and game-over boxes over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx, cy := board.Center()

	switch {
	case g.paused:
		drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	case g.sess.Over():
		hint := "R: restart"
		if g.sess.CanUndo() {
			hint = "U: undo  R: restart"
		}
		drawOverlay(dst, cx, cy, "GAME OVER", fmt.Sprintf("Max tile: %d", g.sess.Grid().MaxTile()), hint)
	case g.sess.AwaitingContinue():
		drawOverlay(dst, cx, cy, "YOU WIN!", fmt.Sprintf("Reached %d", g.sess.Rules().WinValue), "C: keep going  R: new game")
	}
}

// drawOverlay draws a bordered box with centered lines.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX, centerY, 0, 0).Centered(maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	hints := "Arrows/WASD/hjkl: Move | U: Undo | P: Pause | R: Restart | Q: Quit"
	if g.mode == ModeClassic {
		hints = "Arrows/WASD/hjkl: Move | U: Undo | C: Continue | P: Pause | R: Restart | Q: Quit"
	}
	return hints
}
