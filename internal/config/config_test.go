package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "t2048.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultT2048Config()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultT2048Config() {
		t.Errorf("embedded defaults drift from DefaultT2048Config():\n%+v\n%+v", cfg, DefaultT2048Config())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomPartialFile(t *testing.T) {
	path := writeConfig(t, "grid:\n  size: 5\nrules:\n  win_value: 0\n")

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048: %v", err)
	}
	if cfg.Grid.Size != 5 || cfg.Rules.WinValue != 0 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	// Unset keys keep their defaults
	if cfg.Rules.Spawn4Probability != 0.1 || cfg.Leaderboard.MaxLimit != 100 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	if _, err := LoadT2048(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}
	if _, err := LoadT2048(writeConfig(t, "grid: [oops")); err == nil {
		t.Error("malformed yaml should fail")
	}
	_, err := LoadT2048(writeConfig(t, "rules:\n  win_value: 1000\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("non power of two win value: err = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*T2048Config)
		ok     bool
	}{
		{"defaults", func(*T2048Config) {}, true},
		{"endless", func(c *T2048Config) { c.Rules.WinValue = 0 }, true},
		{"tiny grid", func(c *T2048Config) { c.Grid.Size = 1 }, false},
		{"negative win", func(c *T2048Config) { c.Rules.WinValue = -2 }, false},
		{"probability above one", func(c *T2048Config) { c.Rules.Spawn4Probability = 1.2 }, false},
		{"too many initial tiles", func(c *T2048Config) { c.Rules.InitialTiles = 17 }, false},
		{"negative history", func(c *T2048Config) { c.History.Limit = -1 }, false},
		{"default above max", func(c *T2048Config) { c.Leaderboard.DefaultLimit = 200 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultT2048Config()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestApplyT2048Preset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		p4      float64
		history HistoryConfig
	}{
		{DifficultyEasy, 0.05, HistoryConfig{}},
		{DifficultyNormal, 0.10, HistoryConfig{Limit: 10}},
		{DifficultyHard, 0.20, HistoryConfig{Disabled: true}},
		{DifficultyFixed, 0.3, HistoryConfig{Limit: 3}},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultT2048Config()
			cfg.Rules.Spawn4Probability = 0.3
			cfg.History.Limit = 3

			ApplyT2048Preset(&cfg, tc.preset)
			if cfg.Rules.Spawn4Probability != tc.p4 || cfg.History != tc.history {
				t.Errorf("got p4=%g history=%+v", cfg.Rules.Spawn4Probability, cfg.History)
			}
		})
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if p, err := ParseDifficultyPreset(s); err != nil || string(p) != s {
			t.Errorf("ParseDifficultyPreset(%q) = %q, %v", s, p, err)
		}
	}
	if _, err := ParseDifficultyPreset("insane"); err == nil {
		t.Error("unknown preset should fail")
	}
}
