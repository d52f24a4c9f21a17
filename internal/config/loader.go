package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const t2048File = "t2048.yaml"

// LoadT2048 loads 2048 configuration.
// Search order: customPath -> ~/.arcade/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default
// Files are decoded over the defaults, so a file may set only the keys it cares about.
func LoadT2048(customPath string) (T2048Config, error) {
	cfg, err := loadT2048(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadT2048(customPath string) (T2048Config, error) {
	cfg := DefaultT2048Config()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(t2048File); userCfgPath != "" {
		if parsed, ok := tryFile(userCfgPath); ok {
			return parsed, nil
		}
	}

	// Try local configs directory
	if parsed, ok := tryFile(filepath.Join("configs", t2048File)); ok {
		return parsed, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultT2048YAML, &cfg); err != nil {
		return DefaultT2048Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile decodes path over the defaults. Missing or broken files are skipped.
func tryFile(path string) (T2048Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return T2048Config{}, false
	}
	cfg := DefaultT2048Config()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return T2048Config{}, false
	}
	return cfg, true
}

// ApplyT2048Preset adjusts spawn odds and undo depth for a difficulty preset.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Spawn4Probability = 0.05
		cfg.History = HistoryConfig{Limit: 0}
	case DifficultyNormal:
		cfg.Rules.Spawn4Probability = 0.10
		cfg.History = HistoryConfig{Limit: 10}
	case DifficultyHard:
		cfg.Rules.Spawn4Probability = 0.20
		cfg.History = HistoryConfig{Disabled: true}
	case DifficultyFixed:
		// Keep values from the file
	}
}

// userConfigPath returns the path to user config directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
