package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBoom loads the boom configuration.
// Search order: customPath -> ~/.boom/configs/boom.yaml -> ./configs/boom.yaml -> embedded default
func LoadBoom(customPath string) (BoomConfig, error) {
	// Start from the defaults so a partial file keeps sensible values.
	cfg := DefaultBoomConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("boom.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := decode(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultBoomConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "boom.yaml")); err == nil {
		if err := decode(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultBoomConfig()
	}

	// Use embedded default YAML
	if err := decode(defaultBoomYAML, &cfg); err != nil {
		return DefaultBoomConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode unmarshals data over cfg and validates the result.
func decode(data []byte, cfg *BoomConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate checks values that would make a game unplayable.
func (c BoomConfig) Validate() error {
	if c.Players.Lives <= 0 {
		return fmt.Errorf("players.lives must be positive, got %d", c.Players.Lives)
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("levels must not be empty")
	}
	for i, l := range c.Levels {
		if l.Maze == "" {
			return fmt.Errorf("levels[%d]: maze is required", i)
		}
		if l.Time <= 0 {
			return fmt.Errorf("levels[%d]: time must be positive, got %g", i, l.Time)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".boom", "configs", filename)
}

// ApplyBoomPreset modifies the config based on a difficulty preset.
func ApplyBoomPreset(cfg *BoomConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Players.Lives = 5
		cfg.Controls.HoldSeconds = 0.65
	case DifficultyHard:
		cfg.Players.Lives = 2
	}
}
