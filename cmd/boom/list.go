package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boom/internal/config"
	"github.com/vovakirdan/tui-boom/internal/games/boom"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the levels and built-in mazes",
	Long: `Shows the level list of the active config (after --config and
--difficulty are applied) and the names of the mazes built into boom.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	logger, err := setupLogging(false)
	if err != nil {
		return err
	}

	cfg, err := config.LoadBoom(flagConfig)
	if err != nil {
		return err
	}
	if preset, _ := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyBoomPreset(&cfg, preset)
	}
	logger.Debug("config loaded", "levels", len(cfg.Levels), "lives", cfg.Players.Lives)

	out := cmd.OutOrStdout()
	difficulty := config.NewDifficultyManager(cfg.Difficulty)

	// Calculate column widths
	maxMazeLen := len("Maze")
	for _, l := range cfg.Levels {
		maxMazeLen = max(maxMazeLen, len(l.Maze))
	}

	fmt.Fprintf(out, "Levels (%d lives):\n\n", cfg.Players.Lives)
	fmt.Fprintf(out, "  %-5s  %-*s  %5s  %4s\n", "Level", maxMazeLen, "Maze", "Style", "Time")
	fmt.Fprintf(out, "  %-5s  %-*s  %5s  %4s\n", "-----", maxMazeLen, "----", "-----", "----")
	for i, l := range cfg.Levels {
		fmt.Fprintf(out, "  %-5d  %-*s  %5d  %4d\n", i+1, maxMazeLen, l.Maze, l.Style, int(difficulty.LevelTime(l.Time, i)))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Built-in mazes: %s\n", strings.Join(boom.MazeNames(), ", "))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'boom play --level <n>' to start from a level.")
	return nil
}
