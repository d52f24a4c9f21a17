package api

import (
	"time"

	"github.com/vovakirdan/tui-2048/internal/leaderboard"
	"github.com/vovakirdan/tui-2048/internal/profile"
	"github.com/vovakirdan/tui-2048/internal/stats"
)

// Error types
const (
	ErrTypeValidation  = "validation_error"
	ErrTypeNotFound    = "not_found"
	ErrTypeUnavailable = "unavailable"
	ErrTypeInternal    = "internal_error"
)

// Error is the body of every non-2xx response.
type Error struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// HealthResponse reports liveness and whether scores are persisted.
type HealthResponse struct {
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Database bool   `json:"database"`
}

// UserRank is the server player's position in a ranking.
type UserRank struct {
	Rank  int `json:"rank"`
	Total int `json:"total"`
}

// LeaderboardResponse is one ranked category.
type LeaderboardResponse struct {
	Category leaderboard.Category `json:"category"`
	Label    string               `json:"label"`
	Entries  []leaderboard.Entry  `json:"entries"`
	UserRank *UserRank            `json:"user_rank,omitempty"`
}

// Score is one high score row.
type Score struct {
	Rank      int       `json:"rank"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// ScoresResponse lists the best scores of a mode.
type ScoresResponse struct {
	Mode   string  `json:"mode"`
	Scores []Score `json:"scores"`
}

// StatsResponse is the server player's profile and lifetime stats.
type StatsResponse struct {
	Profile      *profile.Profile `json:"profile"`
	Stats        stats.GameStats  `json:"stats"`
	BestScore    int              `json:"best_score"`
	WinRate      float64          `json:"win_rate"`
	AverageMoves float64          `json:"average_moves"`
}
