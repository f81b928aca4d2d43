package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-boom/internal/config"
	"github.com/vovakirdan/tui-boom/internal/games/boom"
)

var testLevels = []string{"01", "02", "03"}

func newTestMenu(opts boom.Options) MenuModel {
	return NewMenuModel(nil, testConfig(), testLevels, opts)
}

func TestMenuDefaults(t *testing.T) {
	m := newTestMenu(boom.Options{StartLevel: 7})

	assert.Equal(t, 1, m.Options().StartLevel)
	assert.False(t, m.WantsPlay())
	assert.Contains(t, m.View(), "B O O M")
	assert.Contains(t, m.View(), "Start level: < 1 01 >")
}

func TestMenuChangesOptions(t *testing.T) {
	m := newTestMenu(boom.Options{})
	down := tea.KeyMsg{Type: tea.KeyDown}
	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}

	m, _ = send(t, m, down)
	m, _ = send(t, m, right)
	assert.True(t, m.Options().TwoPlayers)
	assert.Contains(t, m.View(), "Players: < 2 >")

	m, _ = send(t, m, down)
	m, _ = send(t, m, left)
	assert.Equal(t, 3, m.Options().StartLevel)
	m, _ = send(t, m, right)
	m, _ = send(t, m, right)
	assert.Equal(t, 2, m.Options().StartLevel)

	m, _ = send(t, m, down)
	m, _ = send(t, m, right)
	assert.Equal(t, config.DifficultyEasy, m.Options().Difficulty)
	m, _ = send(t, m, left)
	m, _ = send(t, m, left)
	assert.Equal(t, config.DifficultyFixed, m.Options().Difficulty)
	assert.Contains(t, m.View(), "Difficulty: < fixed >")
}

func TestMenuSelect(t *testing.T) {
	m := newTestMenu(boom.Options{})

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.WantsPlay())
	assert.NotNil(t, cmd)

	m = newTestMenu(boom.Options{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.WantsScoreboard())

	m = newTestMenu(boom.Options{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestMenuShowsHighScore(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveScore(boom.ID, 4200)
	require.NoError(t, err)

	m := NewMenuModel(store, testConfig(), testLevels, boom.Options{})
	assert.Contains(t, m.View(), "high score 0004200")
}

func TestMenuResize(t *testing.T) {
	m := newTestMenu(boom.Options{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, 100, m.Config().ScreenW)
	assert.Equal(t, 30, m.Config().ScreenH)
}

func TestLevelNames(t *testing.T) {
	assert.Equal(t, []string{"01", "02", "03", "04", "05"}, LevelNames(config.DefaultBoomConfig()))
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "   ab", centerText("ab", 8))
	assert.Equal(t, "abcdef", centerText("abcdef", 4))
}
