package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Grid: GridConfig{Size: 4},
		Rules: RulesConfig{
			WinValue:          2048,
			Spawn4Probability: 0.1,
			InitialTiles:      2,
		},
		History: HistoryConfig{Limit: 0},
		Leaderboard: LeaderboardConfig{
			DefaultLimit:       20,
			MaxLimit:           100,
			MinGamesForWinRate: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultT2048YAML
}
