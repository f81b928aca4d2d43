package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boom/internal/games/boom"
	"github.com/vovakirdan/tui-boom/internal/platform/tui"
	"github.com/vovakirdan/tui-boom/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and maze statistics",
	Long: `Display the top high scores and, for every maze played, how often it
was played and solved and the fastest solve.

Examples:
  boom scores
  boom scores --limit 20
  boom scores --tui`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the scores interactively")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of high scores to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	if _, err := setupLogging(flagScoresTUI); err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, boom.ID, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	scores, err := store.TopScores(boom.ID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	stats, err := store.MazeStatsFor(boom.ID)
	if err != nil {
		return fmt.Errorf("retrieving maze stats: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Boom")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'boom play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if len(stats) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Mazes")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-16s  %6s  %6s  %s\n", "Maze", "Played", "Solved", "Best")
	fmt.Fprintf(out, "  %-16s  %6s  %6s  %s\n", "----", "------", "------", "----")
	for _, st := range stats {
		best := "-"
		if st.Solved > 0 {
			best = fmt.Sprintf("%.1fs", st.BestSeconds)
		}
		fmt.Fprintf(out, "  %-16s  %6d  %6d  %s\n", shortMaze(st.Maze), st.Played, st.Solved, best)
	}
	return nil
}

// shortMaze prints maze files by base name.
func shortMaze(name string) string {
	if strings.ContainsAny(name, `/\`) {
		return strings.TrimSuffix(filepath.Base(name), ".txt")
	}
	return name
}
