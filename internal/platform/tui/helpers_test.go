package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-boom/internal/core"
	"github.com/vovakirdan/tui-boom/internal/registry"
	"github.com/vovakirdan/tui-boom/internal/storage"
)

// stubGame ends after overAt steps and reports one round per finished game.
type stubGame struct {
	resets int
	steps  int
	overAt int
	score  int
	last   core.MultiInputFrame
	rounds []registry.RoundResult
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *stubGame) Step(in core.MultiInputFrame) core.StepResult {
	g.last = core.NewMultiInputFrame()
	for id, frame := range in.ByPlayer {
		for a, on := range frame.Actions {
			if on {
				g.last.Set(id, a)
			}
		}
	}

	over := g.steps >= g.overAt
	if over && in.Any(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{})
		over = false
	}
	g.steps++
	if !over && g.steps == g.overAt {
		g.rounds = append(g.rounds, registry.RoundResult{Name: "01", Seconds: 3.5, Score: g.score})
	}
	return core.StepResult{State: core.GameState{Score: g.score, GameOver: g.steps >= g.overAt}}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub game")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.steps >= g.overAt}
}

func (g *stubGame) DrainRounds() []registry.RoundResult {
	r := g.rounds
	g.rounds = nil
	return r
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 30, Seed: 1}
}

// send feeds msg to a model and returns the updated model and command.
func send[M tea.Model](t *testing.T, m M, msg tea.Msg) (M, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(M)
	require.True(t, ok, "unexpected model type %T", next)
	return out, cmd
}
