package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/session"
	"github.com/vovakirdan/tui-2048/internal/leaderboard"
	"github.com/vovakirdan/tui-2048/internal/profile"
	"github.com/vovakirdan/tui-2048/internal/stats"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Services bundles one player's persistence and settings.
type Services struct {
	Store    *storage.Store // nil when running without a database
	Stats    *stats.Repository
	Profiles *profile.Repository
	Config   config.T2048Config
	Logger   *log.Logger
}

// NewServices wires repositories over store, scoped by namespace.
// A nil store keeps everything in memory for this process only.
func NewServices(store *storage.Store, namespace string, cfg config.T2048Config, logger *log.Logger) Services {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var kv storage.KV = storage.NewMemoryKV()
	if store != nil {
		kv = store
	}
	kv = storage.Prefixed(kv, namespace)

	return Services{
		Store:    store,
		Stats:    stats.NewRepository(kv, logger),
		Profiles: profile.NewRepository(kv),
		Config:   cfg,
		Logger:   logger,
	}
}

// LeaderboardOptions are the configured leaderboard limits.
func (s Services) LeaderboardOptions() leaderboard.Options {
	return leaderboard.Options{
		DefaultLimit:       s.Config.Leaderboard.DefaultLimit,
		MaxLimit:           s.Config.Leaderboard.MaxLimit,
		MinGamesForWinRate: s.Config.Leaderboard.MinGamesForWinRate,
	}
}

// Leaderboard builds the leaderboard for this player.
func (s Services) Leaderboard() (*leaderboard.Board, error) {
	return leaderboard.Load(s.Profiles, s.Stats, s.LeaderboardOptions())
}

// Recorder returns the session recorder for a game mode.
func (s Services) Recorder(gameID string) session.Recorder {
	return &gameRecorder{stats: s.Stats, store: s.Store, gameID: gameID, logger: s.Logger}
}

// gameRecorder sends finished games to the stats KV and the score table.
type gameRecorder struct {
	stats  *stats.Repository
	store  *storage.Store
	gameID string
	logger *log.Logger
}

func (r *gameRecorder) BestScore() (int, error)       { return r.stats.BestScore() }
func (r *gameRecorder) SaveBestScore(score int) error { return r.stats.SaveBestScore(score) }

func (r *gameRecorder) RecordGame(res session.Result) error {
	if err := r.stats.RecordGame(res); err != nil {
		return err
	}
	if r.store == nil || res.Score == 0 {
		return nil
	}
	if _, err := r.store.SaveScore(r.gameID, res.Score); err != nil {
		return err
	}
	r.logger.Debug("score saved", "game", r.gameID, "score", res.Score)
	return nil
}
