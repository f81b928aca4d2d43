package boom

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-boom/internal/games/boom/sim"
)

func TestMazeNames(t *testing.T) {
	assert.Equal(t, []string{"01", "02", "03", "04", "05"}, MazeNames())
}

func TestEmbeddedMazesArePlayable(t *testing.T) {
	for _, name := range MazeNames() {
		t.Run(name, func(t *testing.T) {
			m, err := LoadMaze(name, sim.WithLogger(quiet))
			require.NoError(t, err)

			assert.Equal(t, 13, m.Rows())
			assert.Equal(t, 15, m.Cols())
			for slot := 1; slot <= 2; slot++ {
				_, ok := m.Spawn(slot)
				assert.True(t, ok, "spawn %d", slot)
			}
			assert.Positive(t, m.Count(sim.Categories(sim.CategoryEnemy)))
			assert.Positive(t, m.Count(sim.Categories(sim.CategoryCoin)))

			text, err := MazeText(name)
			require.NoError(t, err)
			assert.Equal(t, text, m.Serialize()+"\n")
		})
	}
}

func TestDefaultLevelsUseEmbeddedMazes(t *testing.T) {
	names := MazeNames()
	for _, l := range DefaultLevels() {
		assert.Contains(t, names, l.Maze)
		assert.Positive(t, l.Time)
	}
}

func TestLoadMazeFromFile(t *testing.T) {
	path := writeMaze(t, t.TempDir(), "custom", duoMaze)

	m, err := LoadMaze(path, sim.WithLogger(quiet))
	require.NoError(t, err)
	assert.Equal(t, 5, m.Rows())
	assert.Equal(t, 1, m.Count(sim.Categories(sim.CategoryEnemy)))
}

func TestLoadMazeErrors(t *testing.T) {
	_, err := LoadMaze("99")
	assert.ErrorContains(t, err, `unknown maze "99"`)

	_, err = LoadMaze(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeMaze(t, t.TempDir(), "bad", []string{"S|S", "S|?"})
	_, err = LoadMaze(bad)
	assert.ErrorIs(t, err, sim.ErrMazeDescription)

	var desc *sim.MazeDescriptionError
	require.True(t, errors.As(err, &desc))
	assert.Equal(t, 1, desc.Row)
	assert.Equal(t, 1, desc.Col)
}
