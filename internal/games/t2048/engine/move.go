package engine

import "fmt"

// MoveResult is the outcome of one move. Grid never shares storage with the
// grid the move was applied to.
type MoveResult struct {
	Grid  Grid
	Score int  // Sum of merged tile values
	Moved bool // Whether any cell changed
}

// slideRow slides and merges a single row to the left.
// A freshly merged tile does not merge again in the same pass.
// Returns the updated row and the score gained from merges.
func slideRow(row []int) (result []int, score int) {
	result = make([]int, len(row))
	writePos := 0
	canMerge := false // result[writePos-1] is an unmerged tile

	for _, v := range row {
		if v == 0 {
			continue
		}

		if canMerge && result[writePos-1] == v && mergeable(v) {
			result[writePos-1] *= 2
			score = AddScore(score, result[writePos-1])
			canMerge = false
		} else {
			result[writePos] = v
			writePos++
			canMerge = true
		}
	}

	return result, score
}

// slideLeft applies slideRow to every row.
func slideLeft(g Grid) MoveResult {
	out := Grid{size: g.size, cells: make([]int, len(g.cells))}
	total := 0
	changed := false

	for r := range g.size {
		row := g.row(r)
		newRow, score := slideRow(row)
		copy(out.cells[r*g.size:], newRow)
		total = AddScore(total, score)

		for i := range row {
			if row[i] != newRow[i] {
				changed = true
				break
			}
		}
	}

	return MoveResult{Grid: out, Score: total, Moved: changed}
}

// Move slides the grid in the given direction. Every direction is rotated
// into the leftward frame, slid left, and rotated back.
func Move(g Grid, dir Direction) (MoveResult, error) {
	if !dir.Valid() {
		return MoveResult{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	before, after := dir.rotations()
	res := slideLeft(RotateN(g, before))
	res.Grid = RotateN(res.Grid, after)
	return res, nil
}
