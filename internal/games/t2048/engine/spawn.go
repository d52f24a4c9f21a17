package engine

import "math/rand"

// DefaultSpawn4Probability is the chance that a spawned tile is a 4.
const DefaultSpawn4Probability = 0.10

// Spawner places new tiles in random empty cells.
type Spawner struct {
	rng        *rand.Rand
	spawn4Prob float64
}

// NewSpawner creates a spawner drawing from rng. spawn4Prob is the chance of
// a 4 instead of a 2 and is clamped to [0, 1].
func NewSpawner(rng *rand.Rand, spawn4Prob float64) *Spawner {
	if spawn4Prob < 0 {
		spawn4Prob = 0
	}
	if spawn4Prob > 1 {
		spawn4Prob = 1
	}
	return &Spawner{rng: rng, spawn4Prob: spawn4Prob}
}

// NewSeededSpawner is NewSpawner with a fresh source for seed.
func NewSeededSpawner(seed int64, spawn4Prob float64) *Spawner {
	return NewSpawner(rand.New(rand.NewSource(seed)), spawn4Prob)
}

// Spawn4Probability returns the configured chance of spawning a 4.
func (s *Spawner) Spawn4Probability() float64 {
	return s.spawn4Prob
}

// Spawn returns a copy of g with one new tile (2 or 4) in a uniformly chosen
// empty cell, plus the cell used. On a full board it returns g unchanged and
// ok=false; that is not an error.
func (s *Spawner) Spawn(g Grid) (out Grid, cell Cell, ok bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return g, Cell{}, false
	}

	// Pick random empty cell
	cell = empty[s.rng.Intn(len(empty))]

	// Determine value (90% 2, 10% 4 by default)
	value := 2
	if s.rng.Float64() < s.spawn4Prob {
		value = 4
	}

	return g.With(cell.Row, cell.Col, value), cell, true
}
