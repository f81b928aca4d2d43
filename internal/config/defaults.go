package config

import (
	_ "embed"
)

//go:embed defaults/boom.yaml
var defaultBoomYAML []byte

// DefaultBoomConfig returns the default boom configuration.
func DefaultBoomConfig() BoomConfig {
	return BoomConfig{
		Players: PlayersConfig{
			Lives:      3,
			TwoPlayers: false,
		},
		Controls: ControlsConfig{
			HoldSeconds:      0.55,
			BombRetrySeconds: 0.2,
		},
		Round: RoundConfig{
			StartScreenDelay: 2.0,
			BonusScreenDelay: 2.0,
		},
		Levels: []LevelConfig{
			{Maze: "01", Style: 0, Time: 120},
			{Maze: "02", Style: 1, Time: 150},
			{Maze: "03", Style: 2, Time: 180},
			{Maze: "04", Style: 3, Time: 180},
			{Maze: "05", Style: 0, Time: 240},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "maze",
				MaxAt: 4,
			},
			Scaling: ScalingConfig{
				TimeReduction: 60,
				MinTime:       60,
			},
		},
	}
}
