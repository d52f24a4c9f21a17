package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{1200, 640, 2400} {
		if _, err := store.SaveScore("2048", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("2048_endless", 9000); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending, and modes stay apart
	want := []int{2400, 1200, 640}
	for i, w := range want {
		if scores[i].Score != w || scores[i].GameID != "2048" {
			t.Errorf("scores[%d] = %+v, expected score %d", i, scores[i], w)
		}
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("2048", (i+1)*100)
	}

	scores, err := store.TopScores("2048", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 || scores[0].Score != 500 || scores[2].Score != 300 {
		t.Errorf("unexpected top 3: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, _ := store.TopScores("2048", 0)
	if len(all) != 5 {
		t.Errorf("TopScores(0) returned %d entries, expected 5", len(all))
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("2048")
	if err != nil || high != 0 {
		t.Fatalf("HighScore() on empty table = %d, %v", high, err)
	}

	store.SaveScore("2048", 100)
	store.SaveScore("2048", 300)
	store.SaveScore("2048_endless", 50)

	if high, _ = store.HighScore("2048"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if left, _ := store.AllScores("2048"); len(left) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(left))
	}
	if other, _ := store.AllScores("2048_endless"); len(other) != 1 {
		t.Error("clearing one mode should not touch another")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("2048", 100)
	store.SaveScore("2048", 300)
	store.SaveScore("2048_endless", 40)

	gs, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if gs.GamesCount != 2 || gs.HighScore != 300 || gs.AvgScore != 200 || gs.TotalScore != 400 {
		t.Errorf("unexpected stats: %+v", gs)
	}

	empty, err := store.GetGameStats("unknown")
	if err != nil || empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for unplayed mode = %+v, %v", empty, err)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["2048_endless"].HighScore != 40 {
		t.Errorf("unexpected all-games stats: %v", all)
	}
}
