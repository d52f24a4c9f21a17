package engine

import "testing"

func TestHasWon(t *testing.T) {
	below := MustFromRows([][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 0, 0},
		{0, 0, 0, 1024},
	})
	if HasWon(below, DefaultWinValue) {
		t.Error("grid with max tile below 2048 should not be a win")
	}

	at := below.With(2, 2, 2048)
	if !HasWon(at, DefaultWinValue) {
		t.Error("grid containing 2048 should be a win")
	}

	// Only an exact match counts
	above := below.With(2, 2, 4096)
	if HasWon(above, DefaultWinValue) {
		t.Error("4096 without 2048 should not match win value 2048")
	}

	if HasWon(at, 0) {
		t.Error("win value 0 should disable winning")
	}
	if !HasWon(below, 1024) {
		t.Error("custom win value should be honored")
	}
}

func TestCanMove(t *testing.T) {
	// No empty cells, no adjacent equal values
	locked := MustFromRows([][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2, 4},
		{8, 16, 32, 64},
	})
	if CanMove(locked) {
		t.Error("locked board should not allow moves")
	}

	checkerboard := MustFromRows([][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	if CanMove(checkerboard) {
		t.Error("checkerboard should not allow moves")
	}

	// Horizontal pair in the last row
	horizontal := locked.With(3, 3, 32)
	if !CanMove(horizontal) {
		t.Error("horizontal pair should allow a move")
	}

	// Vertical pair in the last column
	vertical := locked.With(3, 3, 4)
	if !CanMove(vertical) {
		t.Error("vertical pair should allow a move")
	}

	withEmpty := locked.With(1, 1, 0)
	if !CanMove(withEmpty) {
		t.Error("board with empty cell should allow a move")
	}
}

// CanMove must agree with actually trying every direction.
func TestCanMoveAtTileCeiling(t *testing.T) {
	g := MustFromRows([][]int{
		{MaxTileValue, MaxTileValue},
		{2, 4},
	})
	if CanMove(g) {
		t.Error("equal tiles at MaxTileValue cannot merge, the board is locked")
	}
	if !CanMove(g.With(1, 1, 0)) {
		t.Error("an empty cell should allow a move")
	}
}

func TestCanMoveMatchesMove(t *testing.T) {
	spawner := NewSeededSpawner(99, 0.5)
	for seed := range 50 {
		g := MustNew(4)
		for range 10 + seed%7 {
			g, _, _ = spawner.Spawn(g)
		}

		anyMoved := false
		for _, dir := range Directions {
			res, err := Move(g, dir)
			if err != nil {
				t.Fatal(err)
			}
			anyMoved = anyMoved || res.Moved
		}
		if got := CanMove(g); got != anyMoved {
			t.Errorf("CanMove(%v) = %v, but some move changed grid = %v", g, got, anyMoved)
		}
	}
}
