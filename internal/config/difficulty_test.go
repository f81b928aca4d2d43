package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "maze", MaxAt: 4},
	})

	assert.InDelta(t, 0.2, d.Level(0), 1e-9)
	assert.InDelta(t, 0.6, d.Level(2), 1e-9)
	assert.InDelta(t, 1.0, d.Level(4), 1e-9)
	assert.InDelta(t, 1.0, d.Level(10), 1e-9)

	d.SetEnabled(false)
	assert.False(t, d.IsEnabled())
	assert.Zero(t, d.Level(4))
}

func TestDifficultyNoProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "none"},
	})
	d.SetInitialLevel(1.5)

	assert.False(t, d.IsEnabled())
	assert.Equal(t, 1.0, d.Level(0))
	assert.Equal(t, 1.0, d.Level(3))
}

func TestDifficultyLevelTime(t *testing.T) {
	d := NewDifficultyManager(DefaultBoomConfig().Difficulty)

	assert.Equal(t, 120.0, d.LevelTime(120, 0))
	assert.InDelta(t, 150.0-30.0, d.LevelTime(150, 2), 1e-9)
	assert.Equal(t, 60.0, d.LevelTime(100, 4))
	// A level shorter than the floor keeps its own time.
	assert.Equal(t, 40.0, d.LevelTime(40, 4))
}
