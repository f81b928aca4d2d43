package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "boom.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "deep", "boom.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "boom.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("boom", 1250); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("boom")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1250 {
		t.Errorf("expected high score 1250 after reopen, got %d", high)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openStore(t)

	for _, score := range []int{100, 500, 50, 300, 200} {
		if _, err := store.SaveScore("boom", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 900); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("boom", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	want := []int{500, 300, 200}
	if len(scores) != len(want) {
		t.Fatalf("expected %d scores, got %d", len(want), len(scores))
	}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "boom" {
			t.Errorf("scores[%d] game = %q", i, scores[i].GameID)
		}
	}

	all, err := store.AllScores("boom")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("expected 5 scores, got %d", len(all))
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openStore(t)

	high, err := store.HighScore("boom")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for an empty game, got %d", high)
	}

	store.SaveScore("boom", 300)
	store.SaveScore("other", 100)

	if err := store.ClearScores("boom"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("boom", 10); len(scores) != 0 {
		t.Errorf("expected no boom scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("clearing boom should not touch other games")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openStore(t)

	store.SaveScore("boom", 100)
	store.SaveScore("boom", 300)

	stats, err := store.GetGameStats("boom")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("expected average 200, got %v", stats.AvgScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if all["boom"] == nil || all["boom"].GamesCount != 2 {
		t.Errorf("missing boom in all stats: %v", all)
	}
}

func TestStoreMazeResults(t *testing.T) {
	store := openStore(t)

	results := []MazeResult{
		{GameID: "boom", Maze: "01", Solved: true, Seconds: 61.5, Score: 1200},
		{GameID: "boom", Maze: "02", Solved: false, Seconds: 12, Score: 1300},
		{GameID: "boom", Maze: "01", Solved: true, Seconds: 48.25, Score: 900},
		{GameID: "other", Maze: "01", Solved: true, Seconds: 10, Score: 5},
	}
	for _, r := range results {
		if _, err := store.SaveMazeResult(r); err != nil {
			t.Fatalf("SaveMazeResult() failed: %v", err)
		}
	}

	recent, err := store.RecentMazeResults("boom", 2)
	if err != nil {
		t.Fatalf("RecentMazeResults() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 results, got %d", len(recent))
	}
	if recent[0].Maze != "01" || recent[0].Seconds != 48.25 || !recent[0].Solved {
		t.Errorf("unexpected newest result: %+v", recent[0])
	}
	if recent[1].Maze != "02" || recent[1].Solved {
		t.Errorf("unexpected second result: %+v", recent[1])
	}

	stats, err := store.MazeStatsFor("boom")
	if err != nil {
		t.Fatalf("MazeStatsFor() failed: %v", err)
	}
	want := []MazeStats{
		{Maze: "01", Played: 2, Solved: 2, BestSeconds: 48.25},
		{Maze: "02", Played: 1, Solved: 0, BestSeconds: 0},
	}
	if len(stats) != len(want) {
		t.Fatalf("expected %d maze stats, got %d", len(want), len(stats))
	}
	for i, w := range want {
		if stats[i] != w {
			t.Errorf("stats[%d] = %+v, want %+v", i, stats[i], w)
		}
	}
}
