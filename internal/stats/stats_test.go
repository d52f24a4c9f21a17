package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/session"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func TestIncrementGame(t *testing.T) {
	s := GameStats{}.
		IncrementGame(true, 120, 2048, 20000).
		IncrementGame(false, 80, 512, 6000)

	assert.Equal(t, GameStats{
		GamesPlayed: 2,
		GamesWon:    1,
		TotalMoves:  200,
		BestTile:    2048,
		BestScore:   20000,
	}, s)
}

func TestDerivedValues(t *testing.T) {
	var zero GameStats
	assert.Zero(t, zero.WinRate())
	assert.Zero(t, zero.AverageMoves())

	s := GameStats{GamesPlayed: 4, GamesWon: 1, TotalMoves: 300}
	assert.InDelta(t, 0.25, s.WinRate(), 1e-9)
	assert.InDelta(t, 25.0, s.WinRatePercent(), 1e-9)
	assert.InDelta(t, 75.0, s.AverageMoves(), 1e-9)
}

func TestRepositoryDefaults(t *testing.T) {
	repo := NewRepository(storage.NewMemoryKV(), nil)

	best, err := repo.BestScore()
	require.NoError(t, err)
	assert.Zero(t, best)

	s, err := repo.Stats()
	require.NoError(t, err)
	assert.Equal(t, GameStats{}, s)
}

func TestSaveBestScoreOnlyRaises(t *testing.T) {
	repo := NewRepository(storage.NewMemoryKV(), nil)

	require.NoError(t, repo.SaveBestScore(500))
	require.NoError(t, repo.SaveBestScore(300))

	best, err := repo.BestScore()
	require.NoError(t, err)
	assert.Equal(t, 500, best)
}

func TestRecordGame(t *testing.T) {
	kv := storage.NewMemoryKV()
	repo := NewRepository(kv, nil)

	require.NoError(t, repo.RecordGame(session.Result{Won: false, Moves: 10, BestTile: 64, Score: 400}))
	require.NoError(t, repo.RecordGame(session.Result{Won: true, Moves: 30, BestTile: 2048, Score: 900}))

	s, err := repo.Stats()
	require.NoError(t, err)
	assert.Equal(t, GameStats{GamesPlayed: 2, GamesWon: 1, TotalMoves: 40, BestTile: 2048, BestScore: 900}, s)

	best, _ := repo.BestScore()
	assert.Equal(t, 900, best)

	// Stored as JSON under the fixed keys
	raw, ok, err := kv.Get(storage.KeyStats)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"gamesPlayed":2,"gamesWon":1,"totalMoves":40,"bestTile":2048,"bestScore":900}`, string(raw))
}

func TestCorruptValuesYieldDefaults(t *testing.T) {
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(storage.KeyStats, []byte("{broken")))
	require.NoError(t, kv.Set(storage.KeyBestScore, []byte("NaN")))
	repo := NewRepository(kv, nil)

	s, err := repo.Stats()
	require.NoError(t, err)
	assert.Equal(t, GameStats{}, s)

	best, err := repo.BestScore()
	require.NoError(t, err)
	assert.Zero(t, best)

	// Recording over corrupt data starts from zero
	require.NoError(t, repo.RecordGame(session.Result{Moves: 5, BestTile: 8, Score: 20}))
	s, _ = repo.Stats()
	assert.Equal(t, 1, s.GamesPlayed)
}

type failingKV struct{ storage.KV }

func (failingKV) Set(string, []byte) error { return errors.New("disk full") }

func TestRecordGameWrapsErrors(t *testing.T) {
	repo := NewRepository(failingKV{storage.NewMemoryKV()}, nil)

	err := repo.RecordGame(session.Result{Moves: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stats: save")
}

func TestRepositoryDrivesSession(t *testing.T) {
	kv := storage.NewMemoryKV()
	require.NoError(t, storage.SetJSON(kv, storage.KeyBestScore, 1234))

	s, err := session.New(session.Options{Rules: session.DefaultRules(), Recorder: NewRepository(kv, nil)})
	require.NoError(t, err)
	assert.Equal(t, 1234, s.BestScore(), "session should load the stored best score")
}
