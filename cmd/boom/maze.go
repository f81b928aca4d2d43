package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boom/internal/games/boom"
	"github.com/vovakirdan/tui-boom/internal/games/boom/sim"
)

var flagMazeOut string

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Check or print maze files",
	Long: `Tools for maze text files.

A maze is one line per row, cells separated by '|', one character per
cell: S solid wall, B breakable wall, C coin, T teleporter, 0-9 and H
enemies, X and Y the player spawns, space for nothing.`,
}

var mazeCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a maze file and summarize its content",
	Example: `  boom maze check ./mazes/arena.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runMazeCheck,
}

var mazeShowCmd = &cobra.Command{
	Use:   "show <maze>",
	Short: "Print a built-in maze or a maze file in canonical form",
	Example: `  boom maze show 03
  boom maze show ./arena.txt --out ./arena-clean.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runMazeShow,
}

func init() {
	mazeShowCmd.Flags().StringVarP(&flagMazeOut, "out", "o", "", "Write the maze to this file instead of stdout")

	mazeCmd.AddCommand(mazeCheckCmd)
	mazeCmd.AddCommand(mazeShowCmd)
}

func runMazeCheck(cmd *cobra.Command, args []string) error {
	logger, err := setupLogging(false)
	if err != nil {
		return err
	}

	m, err := sim.ReadFile(args[0], sim.WithLogger(logger.WithPrefix("maze")))
	if err != nil {
		var descErr *sim.MazeDescriptionError
		if errors.As(err, &descErr) {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: invalid maze at row %d\n", args[0], descErr.Row+1)
		}
		return err
	}

	summarizeMaze(cmd.OutOrStdout(), args[0], m)
	return nil
}

// summarizeMaze prints the size, spawns and entity counts of m.
func summarizeMaze(w io.Writer, name string, m *sim.Maze) {
	fmt.Fprintf(w, "%s: %d rows x %d cols\n", name, m.Rows(), m.Cols())

	for slot := 1; slot <= 2; slot++ {
		if pos, ok := m.Spawn(slot); ok {
			row, col := pos.Tile()
			fmt.Fprintf(w, "  spawn %c: row %d, col %d\n", sim.SpawnTag(slot), row, col)
		} else {
			fmt.Fprintf(w, "  spawn %c: missing\n", sim.SpawnTag(slot))
		}
	}

	counts := make(map[string]int)
	for _, e := range m.Entities() {
		counts[e.Spec().Name]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-16s %d\n", name, counts[name])
	}

	if m.Count(sim.Categories(sim.CategoryCoin)) == 0 {
		fmt.Fprintln(w, "  no coins: the extra game never starts")
	}
}

func runMazeShow(cmd *cobra.Command, args []string) error {
	logger, err := setupLogging(false)
	if err != nil {
		return err
	}

	m, err := boom.LoadMaze(args[0], sim.WithLogger(logger.WithPrefix("maze")))
	if err != nil {
		return err
	}

	if flagMazeOut != "" {
		if err := m.Save(flagMazeOut); err != nil {
			return err
		}
		logger.Info("maze written", "path", flagMazeOut)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), m.Serialize())
	return nil
}
