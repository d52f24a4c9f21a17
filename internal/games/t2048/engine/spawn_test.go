package engine

import (
	"math/rand"
	"testing"
)

func TestDeterministicSpawn(t *testing.T) {
	// Same seed produces the same sequence of spawns
	a := NewSeededSpawner(12345, DefaultSpawn4Probability)
	b := NewSeededSpawner(12345, DefaultSpawn4Probability)

	ga, gb := MustNew(4), MustNew(4)
	for range 10 {
		ga, _, _ = a.Spawn(ga)
		gb, _, _ = b.Spawn(gb)
	}

	if !ga.Equal(gb) {
		t.Errorf("Same seed should produce same board:\n%v\nvs\n%v", ga, gb)
	}
}

func TestSpawnPlacesOneTile(t *testing.T) {
	s := NewSeededSpawner(1, DefaultSpawn4Probability)
	g := MustFromRows([][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	out, cell, ok := s.Spawn(g)
	if !ok {
		t.Fatal("Spawn on non-full board should succeed")
	}
	if len(out.EmptyCells()) != len(g.EmptyCells())-1 {
		t.Errorf("Spawn should fill exactly one cell")
	}
	v := out.At(cell.Row, cell.Col)
	if v != 2 && v != 4 {
		t.Errorf("spawned value = %d, want 2 or 4", v)
	}
	if g.At(cell.Row, cell.Col) != 0 {
		t.Errorf("Spawn chose occupied cell %v", cell)
	}
	if len(g.EmptyCells()) != 15 {
		t.Error("Spawn mutated the input grid")
	}
}

func TestSpawnFullBoardIsNoOp(t *testing.T) {
	s := NewSeededSpawner(1, DefaultSpawn4Probability)
	full := MustFromRows([][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2, 4},
		{8, 16, 32, 64},
	})

	out, _, ok := s.Spawn(full)
	if ok {
		t.Error("Spawn on full board should report ok=false")
	}
	if !out.Equal(full) {
		t.Error("Spawn on full board should return the grid unchanged")
	}
}

func TestSpawnProbabilityBounds(t *testing.T) {
	only2 := NewSpawner(rand.New(rand.NewSource(3)), 0)
	only4 := NewSpawner(rand.New(rand.NewSource(3)), 1.5)

	if only4.Spawn4Probability() != 1 {
		t.Errorf("probability should clamp to 1, got %f", only4.Spawn4Probability())
	}

	for range 50 {
		g2, c2, _ := only2.Spawn(MustNew(4))
		if g2.At(c2.Row, c2.Col) != 2 {
			t.Fatal("p4=0 should only spawn 2s")
		}
		g4, c4, _ := only4.Spawn(MustNew(4))
		if g4.At(c4.Row, c4.Col) != 4 {
			t.Fatal("p4=1 should only spawn 4s")
		}
	}
}

func TestSpawnDistribution(t *testing.T) {
	s := NewSeededSpawner(2024, DefaultSpawn4Probability)
	fours := 0
	const trials = 10000

	for range trials {
		g, c, _ := s.Spawn(MustNew(4))
		if g.At(c.Row, c.Col) == 4 {
			fours++
		}
	}

	ratio := float64(fours) / trials
	if ratio < 0.07 || ratio > 0.13 {
		t.Errorf("4-tile ratio = %.3f, want about 0.10", ratio)
	}
}
