package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func save(t *testing.T, s *Store, gameID string, scores ...int) {
	t.Helper()
	for _, sc := range scores {
		if _, err := s.SaveScore(gameID, sc); err != nil {
			t.Fatalf("SaveScore(%s, %d): %v", gameID, sc, err)
		}
	}
}

func scoresOf(entries []ScoreEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOpenCreatesNestedPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "scores.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file missing: %v", err)
	}
}

func TestOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := Open("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "scores.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}

func TestMigrationsRunOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	for range 2 {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		v, err := s.SchemaVersion()
		if err != nil {
			t.Fatalf("SchemaVersion: %v", err)
		}
		if v != len(migrations) {
			t.Errorf("schema version = %d, want %d", v, len(migrations))
		}
		s.Close()
	}
}

func TestTopScores(t *testing.T) {
	s := openTestStore(t)
	save(t, s, "chomper", 100, 50, 200, 400, 300)
	save(t, s, "tetris", 500)

	tests := []struct {
		limit int
		want  []int
	}{
		{3, []int{400, 300, 200}},
		{10, []int{400, 300, 200, 100, 50}},
		{0, []int{400, 300, 200, 100, 50}},
	}
	for _, tt := range tests {
		got, err := s.TopScores("chomper", tt.limit)
		if err != nil {
			t.Fatalf("TopScores(%d): %v", tt.limit, err)
		}
		if !equalInts(scoresOf(got), tt.want) {
			t.Errorf("TopScores(%d) = %v, want %v", tt.limit, scoresOf(got), tt.want)
		}
	}
}

func TestAllScoresHasNoLimit(t *testing.T) {
	s := openTestStore(t)
	for i := range 20 {
		save(t, s, "snake", i*10)
	}

	got, err := s.AllScores("snake")
	if err != nil {
		t.Fatalf("AllScores: %v", err)
	}
	if len(got) != 20 || got[0].Score != 190 {
		t.Errorf("AllScores = %v", scoresOf(got))
	}
}

func TestHighScore(t *testing.T) {
	s := openTestStore(t)

	if high, err := s.HighScore("chomper"); err != nil || high != 0 {
		t.Fatalf("HighScore on empty log = %d, %v", high, err)
	}
	save(t, s, "chomper", 100, 300, 200)
	if high, _ := s.HighScore("chomper"); high != 300 {
		t.Errorf("HighScore = %d, want 300", high)
	}
}

func TestBestScore(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		score   int
		updated bool
		best    int
	}{
		{0, false, 0},
		{-5, false, 0},
		{120, true, 120},
		{80, false, 120},
		{120, false, 120},
		{500, true, 500},
	}
	for _, tt := range tests {
		updated, err := s.SetBestScoreIfHigher("chomper", tt.score)
		if err != nil {
			t.Fatalf("SetBestScoreIfHigher(%d): %v", tt.score, err)
		}
		if updated != tt.updated {
			t.Errorf("SetBestScoreIfHigher(%d) = %v, want %v", tt.score, updated, tt.updated)
		}
		if best, _ := s.GetBestScore("chomper"); best != tt.best {
			t.Errorf("after %d: best = %d, want %d", tt.score, best, tt.best)
		}
	}

	if other, _ := s.GetBestScore("tetris"); other != 0 {
		t.Errorf("best score leaked to tetris: %d", other)
	}
}

func TestBestScoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := s.SetBestScoreIfHigher("pong", 5); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	if best, _ := s.GetBestScore("pong"); best != 5 {
		t.Errorf("best after reopen = %d, want 5", best)
	}
}

func TestClearScoresIsPerGame(t *testing.T) {
	s := openTestStore(t)
	save(t, s, "chomper", 100, 200)
	save(t, s, "tetris", 300)
	s.SetBestScoreIfHigher("chomper", 200)
	s.SetBestScoreIfHigher("tetris", 300)

	if err := s.ClearScores("chomper"); err != nil {
		t.Fatalf("ClearScores: %v", err)
	}

	if got, _ := s.AllScores("chomper"); len(got) != 0 {
		t.Errorf("chomper log not cleared: %v", scoresOf(got))
	}
	if best, _ := s.GetBestScore("chomper"); best != 0 {
		t.Errorf("chomper best = %d after clear", best)
	}
	if got, _ := s.AllScores("tetris"); len(got) != 1 {
		t.Errorf("tetris log touched by clearing chomper")
	}
	if best, _ := s.GetBestScore("tetris"); best != 300 {
		t.Errorf("tetris best = %d, want 300", best)
	}
}

func TestAllGamesStats(t *testing.T) {
	s := openTestStore(t)
	day := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return day }
	save(t, s, "tetris", 100)
	s.now = func() time.Time { return day.Add(48 * time.Hour) }
	save(t, s, "tetris", 300)
	save(t, s, "snake", 40)

	stats, err := s.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats for %d games, want 2", len(stats))
	}

	ts := stats["tetris"]
	if ts.GamesCount != 2 || ts.HighScore != 300 || ts.AvgScore != 200 || ts.TotalScore != 400 {
		t.Errorf("tetris stats = %+v", ts)
	}
	if !ts.LastPlayed.Equal(day.Add(48 * time.Hour)) {
		t.Errorf("tetris last played = %v", ts.LastPlayed)
	}
	if _, ok := stats["chomper"]; ok {
		t.Error("unplayed game has stats")
	}
}

func TestScoreTimestamps(t *testing.T) {
	s := openTestStore(t)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return at }
	save(t, s, "pong", 3)

	got, err := s.TopScores("pong", 1)
	if err != nil || len(got) != 1 {
		t.Fatalf("TopScores: %v, %v", got, err)
	}
	if !got[0].CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, want %v", got[0].CreatedAt, at)
	}
}
