// Package config provides YAML-based game configuration loading and
// difficulty management for boom.
package config

// BoomConfig contains all configuration for a boom game.
type BoomConfig struct {
	Players    PlayersConfig    `yaml:"players"`
	Controls   ControlsConfig   `yaml:"controls"`
	Round      RoundConfig      `yaml:"round"`
	Levels     []LevelConfig    `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayersConfig defines who plays and with how many lives.
type PlayersConfig struct {
	Lives      int  `yaml:"lives"`
	TwoPlayers bool `yaml:"two_players"`
}

// ControlsConfig tunes keyboard handling.
type ControlsConfig struct {
	// Terminals report key presses and repeats but no releases, so a
	// direction stays wanted this long after its last press.
	HoldSeconds float64 `yaml:"hold_seconds"`
	// BombRetrySeconds keeps retrying a refused bomb drop for a while.
	BombRetrySeconds float64 `yaml:"bomb_retry_seconds"`
}

// RoundConfig defines the delays of the screens between mazes.
type RoundConfig struct {
	StartScreenDelay float64 `yaml:"start_screen_delay"`
	BonusScreenDelay float64 `yaml:"bonus_screen_delay"`
}

// LevelConfig describes one maze of the level list.
type LevelConfig struct {
	Maze  string  `yaml:"maze"`  // embedded maze name or path to a maze file
	Style int     `yaml:"style"` // color palette
	Time  float64 `yaml:"time"`  // seconds before hurry-up
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases along the level list.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "maze" or "none"
	MaxAt int    `yaml:"max_at"` // Maze index at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	TimeReduction float64 `yaml:"time_reduction"` // Seconds cut from a level's time at max difficulty
	MinTime       float64 `yaml:"min_time"`       // Lower bound for a level's time
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}
