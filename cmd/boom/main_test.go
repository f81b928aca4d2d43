package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-boom/internal/games/boom/sim"
)

func TestPortOf(t *testing.T) {
	assert.Equal(t, "2222", portOf(":2222"))
	assert.Equal(t, "23234", portOf("localhost:23234"))
	assert.Equal(t, "23234", portOf("garbage"))
}

func TestValidateGlobalFlags(t *testing.T) {
	reset := func() {
		flagFPS, flagLevel, flagDifficulty, flagLogLevel = 30, 0, "", "info"
	}
	t.Cleanup(reset)

	reset()
	assert.NoError(t, validateGlobalFlags(nil, nil))

	reset()
	flagFPS = 0
	assert.Error(t, validateGlobalFlags(nil, nil))

	reset()
	flagDifficulty = "insane"
	assert.ErrorContains(t, validateGlobalFlags(nil, nil), "insane")

	reset()
	flagLevel = -1
	assert.Error(t, validateGlobalFlags(nil, nil))

	reset()
	flagLogLevel = "loud"
	assert.Error(t, validateGlobalFlags(nil, nil))
}

func TestSummarizeMaze(t *testing.T) {
	m, err := sim.Parse("S|S|S|S\nS|X|C|S\nS|B|0|S\nS|S|S|S")
	require.NoError(t, err)

	var out bytes.Buffer
	summarizeMaze(&out, "tiny", m)

	text := out.String()
	assert.Contains(t, text, "tiny: 4 rows x 4 cols")
	assert.Contains(t, text, "spawn X: row 1, col 1")
	assert.Contains(t, text, "spawn Y: missing")
	assert.Contains(t, text, "solid wall")
	assert.NotContains(t, text, "no coins")
}

func TestMazeCommands(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(good, []byte("S|S|S\nS|X|S\nS|S|S\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("S|S|S\nS|?|S\n"), 0o644))

	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs(args)
		err := rootCmd.Execute()
		return out.String(), err
	}
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	out, err := run("maze", "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, "3 rows x 3 cols")
	assert.Contains(t, out, "no coins")

	out, err = run("maze", "check", bad)
	require.ErrorIs(t, err, sim.ErrMazeDescription)
	assert.Contains(t, out, "invalid maze at row 2")

	out, err = run("maze", "show", good)
	require.NoError(t, err)
	assert.Equal(t, "S|S|S\nS|X|S\nS|S|S\n", out)

	clean := filepath.Join(dir, "clean.txt")
	_, err = run("maze", "show", good, "--out", clean)
	require.NoError(t, err)
	data, err := os.ReadFile(clean)
	require.NoError(t, err)
	assert.Equal(t, "S|S|S\nS|X|S\nS|S|S\n", string(data))
}
