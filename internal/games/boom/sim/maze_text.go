package sim

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-boom/internal/core"
)

// ErrMazeDescription is wrapped by every error raised while reading maze text.
var ErrMazeDescription = errors.New("sim: invalid maze description")

// MazeDescriptionError locates a problem in maze text. Row and Col are zero
// based; Col is -1 for errors about a whole row.
type MazeDescriptionError struct {
	Row    int
	Col    int
	Cell   string
	Reason string
}

func (e *MazeDescriptionError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("maze row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("maze cell (%d, %d) %q: %s", e.Row, e.Col, e.Cell, e.Reason)
}

func (e *MazeDescriptionError) Unwrap() error {
	return ErrMazeDescription
}

// Parse builds a maze from its text form: one line per row, cells separated
// by '|', one character per cell. Spawn letters fill the spawn table, other
// characters go through DefaultTags. Teleporters are linked in reading order
// into a ring. A maze without coins never enters the extra game.
func Parse(text string, opts ...Option) (*Maze, error) {
	return ParseWith(DefaultTags(), text, opts...)
}

// ParseWith is Parse with an explicit tag registry.
func ParseWith(tags *TagRegistry, text string, opts ...Option) (*Maze, error) {
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")

	grid := make([][]string, len(lines))
	for i, line := range lines {
		grid[i] = strings.Split(strings.TrimSuffix(line, "\r"), string(Separator))
	}

	rows, cols := len(grid), len(grid[0])
	m := NewMaze(rows, cols, opts...)

	hasCoin := false
	var teleporters []*Entity

	for i, cells := range grid {
		if len(cells) != cols {
			return nil, &MazeDescriptionError{
				Row:    i,
				Col:    -1,
				Reason: fmt.Sprintf("has %d cells, expected %d", len(cells), cols),
			}
		}

		for j, cell := range cells {
			r, size := utf8.DecodeRuneInString(cell)
			if size != len(cell) || size == 0 {
				return nil, &MazeDescriptionError{Row: i, Col: j, Cell: cell, Reason: "unknown identifier"}
			}
			if r == Void {
				continue
			}

			pos := core.V(float64(i), float64(j))
			if slot, ok := spawnTags[r]; ok {
				m.spawns[slot] = pos
				continue
			}

			k, ok := tags.Lookup(r)
			if !ok {
				return nil, &MazeDescriptionError{Row: i, Col: j, Cell: cell, Reason: "unknown identifier"}
			}

			e := newEntity(m, k, pos)
			m.insert(e)

			switch k.Category() {
			case CategoryCoin:
				hasCoin = true
			case CategoryTeleporter:
				teleporters = append(teleporters, e)
			}
		}
	}

	for i, tp := range teleporters {
		tp.Link(teleporters[(i+1)%len(teleporters)])
	}

	if !hasCoin {
		m.extraGameTimer.Start(core.Forever)
	}
	return m, nil
}

// Serialize renders the maze in the form read by Parse. Players are shown
// with their spawn letter, as are spawn points nobody used yet. Kinds
// without a tag, such as bombs and lasers, are left out.
func (m *Maze) Serialize() string {
	grid := make([][]rune, m.rows)
	for i := range grid {
		grid[i] = make([]rune, m.cols)
		for j := range grid[i] {
			grid[i][j] = Void
		}
	}

	put := func(pos core.Vector, r rune) {
		i, j := pos.Tile()
		if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
			return
		}
		grid[i][j] = r
	}

	for _, e := range m.entities {
		r := e.Spec().Tag
		if e.player != nil {
			r = SpawnTag(e.player.slot)
		}
		if r == 0 {
			continue
		}
		put(e.position, r)
	}
	for slot, pos := range m.spawns {
		put(pos, SpawnTag(slot))
	}

	var b strings.Builder
	for i, row := range grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, r := range row {
			if j > 0 {
				b.WriteRune(Separator)
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ReadFile parses the maze stored in path.
func ReadFile(path string, opts ...Option) (*Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read maze: %w", err)
	}
	m, err := Parse(string(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("parse maze %s: %w", path, err)
	}
	return m, nil
}

// Save writes the serialized maze to path.
func (m *Maze) Save(path string) error {
	if err := os.WriteFile(path, []byte(m.Serialize()+"\n"), 0o644); err != nil {
		return fmt.Errorf("save maze: %w", err)
	}
	return nil
}
