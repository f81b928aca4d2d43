package boom

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-boom/internal/games/boom/sim"
)

//go:embed mazes/*.txt
var mazeFS embed.FS

// Level describes one maze of a game.
type Level struct {
	Maze  string  // embedded maze name or file path
	Style int     // palette index used by the renderer
	Time  float64 // seconds before hurry-up kicks in
}

// DefaultLevels is the level list used when no configuration provides one.
func DefaultLevels() []Level {
	return []Level{
		{Maze: "01", Style: 0, Time: 120},
		{Maze: "02", Style: 1, Time: 150},
		{Maze: "03", Style: 2, Time: 180},
		{Maze: "04", Style: 3, Time: 180},
		{Maze: "05", Style: 0, Time: 240},
	}
}

// MazeNames lists the embedded mazes.
func MazeNames() []string {
	entries, err := mazeFS.ReadDir("mazes")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

// isMazeFile reports whether name refers to a file rather than an embedded maze.
func isMazeFile(name string) bool {
	return strings.HasSuffix(name, ".txt") || strings.ContainsAny(name, `/\`)
}

// MazeText returns the raw text of an embedded maze or a maze file.
func MazeText(name string) (string, error) {
	if isMazeFile(name) {
		data, err := readFile(name)
		if err != nil {
			return "", fmt.Errorf("boom: read maze %s: %w", name, err)
		}
		return string(data), nil
	}
	data, err := mazeFS.ReadFile(path.Join("mazes", name+".txt"))
	if err != nil {
		return "", fmt.Errorf("boom: unknown maze %q: %w", name, err)
	}
	return string(data), nil
}

// LoadMaze parses an embedded maze or a maze file.
func LoadMaze(name string, opts ...sim.Option) (*sim.Maze, error) {
	text, err := MazeText(name)
	if err != nil {
		return nil, err
	}
	m, err := sim.Parse(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("boom: maze %s: %w", name, err)
	}
	return m, nil
}
