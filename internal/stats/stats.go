// Package stats keeps lifetime 2048 statistics and the best score.
package stats

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/session"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// GameStats are lifetime counters. The zero value is the default.
type GameStats struct {
	GamesPlayed int `json:"gamesPlayed"`
	GamesWon    int `json:"gamesWon"`
	TotalMoves  int `json:"totalMoves"`
	BestTile    int `json:"bestTile"`
	BestScore   int `json:"bestScore"`
}

// IncrementGame returns the stats with one more finished game counted.
func (s GameStats) IncrementGame(won bool, moves, bestTile, finalScore int) GameStats {
	out := GameStats{
		GamesPlayed: s.GamesPlayed + 1,
		GamesWon:    s.GamesWon,
		TotalMoves:  s.TotalMoves + moves,
		BestTile:    max(s.BestTile, bestTile),
		BestScore:   max(s.BestScore, finalScore),
	}
	if won {
		out.GamesWon++
	}
	return out
}

// WinRate is GamesWon/GamesPlayed in [0, 1], 0 with no games.
func (s GameStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.GamesWon) / float64(s.GamesPlayed)
}

// WinRatePercent is WinRate scaled to [0, 100].
func (s GameStats) WinRatePercent() float64 {
	return s.WinRate() * 100
}

// AverageMoves per played game, 0 with no games.
func (s GameStats) AverageMoves() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.TotalMoves) / float64(s.GamesPlayed)
}

// Repository reads and writes stats and best score in a KV store.
type Repository struct {
	kv     storage.KV
	logger *log.Logger
}

var _ session.Recorder = (*Repository)(nil)

// NewRepository creates a repository. A nil logger discards output.
func NewRepository(kv storage.KV, logger *log.Logger) *Repository {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Repository{kv: kv, logger: logger}
}

// BestScore returns the stored best score, 0 if none.
func (r *Repository) BestScore() (int, error) {
	best, err := storage.GetJSON(r.kv, storage.KeyBestScore, 0)
	if errors.Is(err, storage.ErrCorrupt) {
		r.logger.Warn("resetting unreadable best score", "error", err)
		return 0, nil
	}
	return best, err
}

// SaveBestScore stores score if it beats the stored best.
func (r *Repository) SaveBestScore(score int) error {
	best, err := r.BestScore()
	if err != nil {
		return err
	}
	if score <= best {
		return nil
	}
	return storage.SetJSON(r.kv, storage.KeyBestScore, score)
}

// Stats returns the stored stats, zero if none or unreadable.
func (r *Repository) Stats() (GameStats, error) {
	s, err := storage.GetJSON(r.kv, storage.KeyStats, GameStats{})
	if errors.Is(err, storage.ErrCorrupt) {
		r.logger.Warn("resetting unreadable stats", "error", err)
		return GameStats{}, nil
	}
	return s, err
}

// SaveStats replaces the stored stats.
func (r *Repository) SaveStats(s GameStats) error {
	return storage.SetJSON(r.kv, storage.KeyStats, s)
}

// RecordGame counts a finished game and raises the best score.
func (r *Repository) RecordGame(res session.Result) error {
	cur, err := r.Stats()
	if err != nil {
		return fmt.Errorf("stats: load: %w", err)
	}
	next := cur.IncrementGame(res.Won, res.Moves, res.BestTile, res.Score)
	if err := r.SaveStats(next); err != nil {
		return fmt.Errorf("stats: save: %w", err)
	}
	if err := r.SaveBestScore(res.Score); err != nil {
		return fmt.Errorf("stats: best score: %w", err)
	}
	r.logger.Debug("game recorded", "games", next.GamesPlayed, "won", res.Won, "score", res.Score)
	return nil
}
