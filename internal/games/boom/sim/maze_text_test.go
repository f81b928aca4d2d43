package sim

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-boom/internal/core"
)

var smallMaze = []string{
	"S|S|S|S|S",
	"S|X|C|B|S",
	"S|T|0|T|S",
	"S|Y| |B|S",
	"S|S|S|S|S",
}

func TestParse(t *testing.T) {
	m := parseMaze(t, smallMaze...)

	assert.Equal(t, 5, m.Rows())
	assert.Equal(t, 5, m.Cols())
	assert.Equal(t, StateRunning, m.State())

	assert.Equal(t, 16, countKind(m, KindSolidWall))
	assert.Equal(t, 2, countKind(m, KindBreakableWall))
	assert.Equal(t, 1, countKind(m, KindCoin))
	assert.Equal(t, 2, countKind(m, KindTeleporter))
	assert.Equal(t, 1, countKind(m, KindSoldier))
	assert.Zero(t, m.PlayerCount())

	p1, ok := m.Spawn(1)
	require.True(t, ok)
	assert.Equal(t, core.V(1, 1), p1)
	p2, ok := m.Spawn(2)
	require.True(t, ok)
	assert.Equal(t, core.V(3, 1), p2)
}

func TestParseRoundTrip(t *testing.T) {
	text := strings.Join(smallMaze, "\n")
	m := parseMaze(t, smallMaze...)
	assert.Equal(t, text, m.Serialize())

	again, err := Parse(m.Serialize())
	require.NoError(t, err)
	assert.Equal(t, text, again.Serialize())
}

func TestSerializeWithPlayers(t *testing.T) {
	m := parseMaze(t, smallMaze...)
	spawnPlayer(t, m, 1)

	_, ok := m.Spawn(1)
	assert.False(t, ok, "spawn is consumed")
	assert.Equal(t, strings.Join(smallMaze, "\n"), m.Serialize())
}

func TestSerializeSkipsUntaggedKinds(t *testing.T) {
	m := parseMaze(t,
		"S|S|S",
		"S|X|S",
		"S| |S",
	)
	p := spawnPlayer(t, m, 1)
	m.AddEntity(m.newBomb(p, core.V(2, 1)))

	assert.Equal(t, "S|S|S\nS|X|S\nS| |S", m.Serialize())
}

func TestParseTrailingNewline(t *testing.T) {
	m, err := Parse("S|S\nS|S\n")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, "S|S\nS|S", m.Serialize())
}

func TestParseRaggedRow(t *testing.T) {
	_, err := Parse("S|S|S\nS|S\nS|S|S")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMazeDescription)

	var de *MazeDescriptionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 1, de.Row)
	assert.Equal(t, -1, de.Col)
}

func TestParseUnknownIdentifier(t *testing.T) {
	cases := []struct {
		name string
		text string
		row  int
		col  int
		cell string
	}{
		{"unknown rune", "S|S\nS|?", 1, 1, "?"},
		{"two runes", "SS|S", 0, 0, "SS"},
		{"empty cell", "S||S", 0, 1, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.text)
			var de *MazeDescriptionError
			require.True(t, errors.As(err, &de), "got %v", err)
			assert.Equal(t, tc.row, de.Row)
			assert.Equal(t, tc.col, de.Col)
			assert.Equal(t, tc.cell, de.Cell)
			assert.Contains(t, de.Error(), "unknown identifier")
		})
	}
}

func TestParseLinksTeleportersInRing(t *testing.T) {
	m := parseMaze(t, "T| |T| |T")
	tps := entitiesOf(m, KindTeleporter)
	require.Len(t, tps, 3)

	assert.Equal(t, tps[1].ID, tps[0].teleporter.next)
	assert.Equal(t, tps[2].ID, tps[1].teleporter.next)
	assert.Equal(t, tps[0].ID, tps[2].teleporter.next)
}

func TestParseWithoutCoinDisablesExtraGame(t *testing.T) {
	m := parseMaze(t,
		"X| | |0",
	)
	assert.True(t, m.extraGameTimer.Active())
	assert.Equal(t, core.Forever, m.extraGameTimer.Total())

	spawnPlayer(t, m, 1)
	r := record(&m.Publisher)
	m.Update(0.1)
	assert.Zero(t, countOf[*ExtraGameEvent](r))
	assert.Zero(t, m.ExtraGameLeft())
}

func TestParsedEntitiesAttached(t *testing.T) {
	m := parseMaze(t, smallMaze...)
	assert.Zero(t, m.Len(), "no subscribers yet")
	for _, e := range m.Entities() {
		assert.True(t, e.Attached())
		assert.Same(t, m, e.Maze())
	}
}

func TestSaveAndReadFile(t *testing.T) {
	m := parseMaze(t, smallMaze...)
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, m.Save(path))

	loaded, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, m.Serialize(), loaded.Serialize())

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
