package sim

import (
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-boom/internal/events"
)

// parseMaze reads rows joined by newlines, with a fixed seed and a silent logger.
func parseMaze(t *testing.T, rows ...string) *Maze {
	t.Helper()
	m, err := Parse(strings.Join(rows, "\n"),
		WithRand(rand.New(rand.NewSource(42))),
		WithLogger(log.New(io.Discard)),
	)
	require.NoError(t, err)
	return m
}

// spawnPlayer adds a fresh player on the spawn point of slot.
func spawnPlayer(t *testing.T, m *Maze, slot int) *Entity {
	t.Helper()
	p := NewPlayer(slot)
	require.NoError(t, m.AddPlayer(p))
	return p
}

func entitiesOf(m *Maze, k Kind) []*Entity {
	var out []*Entity
	for _, e := range m.Entities() {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

func countKind(m *Maze, k Kind) int {
	return len(entitiesOf(m, k))
}

func tick(m *Maze, dt float64, n int) {
	for i := 0; i < n; i++ {
		m.Update(dt)
	}
}

// recorder collects published events.
type recorder struct {
	events []events.Event
}

func record(p *events.Publisher) *recorder {
	r := &recorder{}
	p.SubscribeFunc(func(e events.Event) { r.events = append(r.events, e) })
	return r
}

func countOf[T events.Event](r *recorder) int {
	n := 0
	for _, e := range r.events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}
