// Package config provides YAML-based configuration for 2048.
// Configs are loaded from files with embedded defaults as fallback.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// T2048Config holds all configuration for 2048.
type T2048Config struct {
	Grid        GridConfig        `yaml:"grid"`
	Rules       RulesConfig       `yaml:"rules"`
	History     HistoryConfig     `yaml:"history"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// GridConfig contains board dimensions.
type GridConfig struct {
	Size int `yaml:"size"` // Board is Size x Size
}

// RulesConfig contains game rules.
type RulesConfig struct {
	WinValue          int     `yaml:"win_value"`          // 0 = endless
	Spawn4Probability float64 `yaml:"spawn4_probability"` // Chance a spawned tile is 4
	InitialTiles      int     `yaml:"initial_tiles"`
}

// HistoryConfig controls undo.
type HistoryConfig struct {
	Limit    int  `yaml:"limit"` // 0 = unbounded
	Disabled bool `yaml:"disabled"`
}

// LeaderboardConfig contains leaderboard query bounds.
type LeaderboardConfig struct {
	DefaultLimit       int `yaml:"default_limit"`
	MaxLimit           int `yaml:"max_limit"`
	MinGamesForWinRate int `yaml:"min_games_for_win_rate"`
}

// Validate checks that all values are usable.
func (c T2048Config) Validate() error {
	switch {
	case c.Grid.Size < 2:
		return fmt.Errorf("%w: grid.size must be at least 2, got %d", ErrInvalidConfig, c.Grid.Size)
	case c.Rules.WinValue < 0 || (c.Rules.WinValue > 0 && (c.Rules.WinValue < 4 || !powerOfTwo(c.Rules.WinValue))):
		return fmt.Errorf("%w: rules.win_value must be 0 or a power of two, got %d", ErrInvalidConfig, c.Rules.WinValue)
	case c.Rules.Spawn4Probability < 0 || c.Rules.Spawn4Probability > 1:
		return fmt.Errorf("%w: rules.spawn4_probability must be in [0, 1], got %g", ErrInvalidConfig, c.Rules.Spawn4Probability)
	case c.Rules.InitialTiles < 0 || c.Rules.InitialTiles > c.Grid.Size*c.Grid.Size:
		return fmt.Errorf("%w: rules.initial_tiles out of range: %d", ErrInvalidConfig, c.Rules.InitialTiles)
	case c.History.Limit < 0:
		return fmt.Errorf("%w: history.limit must not be negative", ErrInvalidConfig)
	case c.Leaderboard.DefaultLimit < 1 || c.Leaderboard.MaxLimit < c.Leaderboard.DefaultLimit:
		return fmt.Errorf("%w: leaderboard limits must satisfy 1 <= default_limit <= max_limit", ErrInvalidConfig)
	case c.Leaderboard.MinGamesForWinRate < 0:
		return fmt.Errorf("%w: leaderboard.min_games_for_win_rate must not be negative", ErrInvalidConfig)
	}
	return nil
}

func powerOfTwo(n int) bool {
	return n >= 2 && n&(n-1) == 0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a flag value into a preset.
// An empty string returns an empty preset, which leaves the config alone.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset keeps file values untouched.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
