package engine

// DefaultWinValue is the tile that wins a classic game.
const DefaultWinValue = 2048

// HasWon reports whether any cell equals winValue. A winValue of 0 or less
// means there is no win condition (endless play).
func HasWon(g Grid, winValue int) bool {
	if winValue <= 0 {
		return false
	}
	for _, v := range g.cells {
		if v == winValue {
			return true
		}
	}
	return false
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g Grid) bool {
	for _, v := range g.cells {
		if v == 0 {
			return true
		}
	}
	return false
}

// HasPossibleMerge returns true if any horizontally or vertically adjacent
// tiles hold equal values that can still merge.
func HasPossibleMerge(g Grid) bool {
	n := g.size
	for r := range n {
		for c := range n {
			val := g.cells[r*n+c]
			if !mergeable(val) {
				continue
			}
			// Check right neighbor
			if c < n-1 && g.cells[r*n+c+1] == val {
				return true
			}
			// Check bottom neighbor
			if r < n-1 && g.cells[(r+1)*n+c] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(g Grid) bool {
	return HasEmptyCell(g) || HasPossibleMerge(g)
}
