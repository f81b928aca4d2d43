package boom

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-boom/internal/events"
)

var quiet = log.New(io.Discard)

// Test mazes. An enemy sealed in walls keeps a maze running forever.
var (
	openMaze = []string{
		"S|S|S",
		"S|X|S",
		"S|S|S",
	}
	noSpawnMaze = []string{
		"S|S|S",
		"S|0|S",
		"S|S|S",
	}
	corridorMaze = []string{
		"S|S|S|S|S|S|S",
		"S|X| | | | |S",
		"S|S|S|S|S|S|S",
		"S|0|S|S|S|S|S",
		"S|S|S|S|S|S|S",
	}
	duoMaze = []string{
		"S|S|S|S|S",
		"S|X|S|Y|S",
		"S|S|S|S|S",
		"S|0|S|S|S",
		"S|S|S|S|S",
	}
)

// writeMaze stores a maze file in dir and returns its path.
func writeMaze(t *testing.T, dir, name string, rows []string) string {
	t.Helper()
	path := filepath.Join(dir, name+".txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(rows, "\n")+"\n"), 0o644))
	return path
}

// recorder collects published events.
type recorder struct {
	events []events.Event
}

func record(p *events.Publisher) *recorder {
	r := &recorder{}
	p.SubscribeFunc(func(e events.Event) {
		r.events = append(r.events, e)
	})
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
