// Package engine implements the pure 2048 grid engine: grid values, the
// slide-and-merge move, weighted tile spawning and terminal checks.
// Nothing here performs I/O or keeps state between calls.
package engine

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// DefaultSize is the default board dimension.
const DefaultSize = 4

// MaxTileValue is the largest tile an int can hold. Tiles of this value no
// longer merge.
const MaxTileValue = 1 << (bits.UintSize - 2)

var (
	ErrInvalidSize = errors.New("engine: grid size must be at least 2")
	ErrNotSquare   = errors.New("engine: grid is not square")
	ErrInvalidTile = errors.New("engine: tile must be 0 or a power of two in [2, MaxTileValue]")
)

// Cell is a (row, col) position on the grid.
type Cell struct {
	Row int
	Col int
}

// Grid is an immutable N×N board. The zero value is not usable; build grids
// with New or FromRows. Operations return fresh grids and never share storage.
type Grid struct {
	size  int
	cells []int // row-major, len size*size
}

// New returns an empty grid of the given size.
func New(size int) (Grid, error) {
	if size < 2 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return Grid{size: size, cells: make([]int, size*size)}, nil
}

// MustNew is New for sizes known to be valid. It panics otherwise.
func MustNew(size int) Grid {
	g, err := New(size)
	if err != nil {
		panic(err)
	}
	return g
}

// FromRows builds a grid from a row-major matrix, validating shape and values.
func FromRows(rows [][]int) (Grid, error) {
	n := len(rows)
	g, err := New(n)
	if err != nil {
		return Grid{}, err
	}
	for r, row := range rows {
		if len(row) != n {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, r, len(row), n)
		}
		for c, v := range row {
			if !validTile(v) {
				return Grid{}, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidTile, v, r, c)
			}
			g.cells[r*n+c] = v
		}
	}
	return g, nil
}

// MustFromRows is FromRows for literal grids in tests and fixtures.
func MustFromRows(rows [][]int) Grid {
	g, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// validTile reports whether v is 0 or a power of two in [2, MaxTileValue].
func validTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v <= MaxTileValue && v&(v-1) == 0
}

// mergeable reports whether two equal tiles of value v may combine.
func mergeable(v int) bool {
	return v != 0 && v < MaxTileValue
}

// AddScore adds delta to score, saturating at math.MaxInt.
func AddScore(score, delta int) int {
	if delta > math.MaxInt-score {
		return math.MaxInt
	}
	return score + delta
}

// Size returns the grid dimension N.
func (g Grid) Size() int {
	return g.size
}

// At returns the value at (row, col). Out-of-range positions read as 0.
func (g Grid) At(row, col int) int {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return 0
	}
	return g.cells[row*g.size+col]
}

// With returns a copy of the grid with (row, col) set to v.
func (g Grid) With(row, col, v int) Grid {
	out := g.clone()
	out.cells[row*g.size+col] = v
	return out
}

// Rows returns a deep copy of the grid as a row-major matrix.
func (g Grid) Rows() [][]int {
	rows := make([][]int, g.size)
	for r := range g.size {
		rows[r] = make([]int, g.size)
		copy(rows[r], g.cells[r*g.size:(r+1)*g.size])
	}
	return rows
}

// row returns a copy of row r.
func (g Grid) row(r int) []int {
	out := make([]int, g.size)
	copy(out, g.cells[r*g.size:(r+1)*g.size])
	return out
}

func (g Grid) clone() Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	return Grid{size: g.size, cells: cells}
}

// EmptyCells returns every empty cell in row-major order.
func (g Grid) EmptyCells() []Cell {
	var cells []Cell
	for i, v := range g.cells {
		if v == 0 {
			cells = append(cells, Cell{Row: i / g.size, Col: i % g.size})
		}
	}
	return cells
}

// MaxTile returns the largest tile, or 0 for an empty grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for _, v := range g.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Equal reports whether both grids have the same size and cells.
func (g Grid) Equal(other Grid) bool {
	if g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rotate returns the grid turned 90° clockwise: transpose, then reverse
// each row.
func Rotate(g Grid) Grid {
	n := g.size
	out := Grid{size: n, cells: make([]int, len(g.cells))}
	for r := range n {
		for c := range n {
			// transpose
			out.cells[c*n+r] = g.cells[r*n+c]
		}
	}
	for r := range n {
		row := out.cells[r*n : (r+1)*n]
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
	return out
}

// RotateN applies Rotate k times (k taken mod 4).
func RotateN(g Grid, k int) Grid {
	k = ((k % 4) + 4) % 4
	out := g.clone()
	for range k {
		out = Rotate(out)
	}
	return out
}

// String renders the grid as slash-separated rows, e.g. "2,0/0,4".
// ParseGrid reads the same format back.
func (g Grid) String() string {
	var sb strings.Builder
	for r := range g.size {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := range g.size {
			if c > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(g.cells[r*g.size+c]))
		}
	}
	return sb.String()
}

// ParseGrid parses the String format. Whitespace around values is ignored.
func ParseGrid(s string) (Grid, error) {
	lines := strings.Split(strings.TrimSpace(s), "/")
	rows := make([][]int, len(lines))
	for r, line := range lines {
		fields := strings.Split(line, ",")
		rows[r] = make([]int, len(fields))
		for c, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return Grid{}, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidTile, f, r, c)
			}
			rows[r][c] = v
		}
	}
	return FromRows(rows)
}
