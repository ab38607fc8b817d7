package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct{ score, level int }{{100, 0}, {50, 0}, {2200, 2}} {
		if _, err := store.SaveScore("kong", s.score, s.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500, 9); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("kong", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []ScoreEntry{{Score: 2200, Level: 2}, {Score: 100}, {Score: 50}}
	for i, e := range expected {
		if scores[i].Score != e.Score || scores[i].Level != e.Level {
			t.Errorf("scores[%d] = %d/L%d, expected %d/L%d", i, scores[i].Score, scores[i].Level, e.Score, e.Level)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("kong", (i+1)*100, 0)
	}

	scores, err := store.TopScores("kong", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("kong")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("kong", 100, 0)
	store.SaveScore("kong", 300, 1)
	store.SaveScore("kong", 200, 1)

	high, err = store.HighScore("kong")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreBestLevel(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.BestLevel("kong"); err != nil || ok {
		t.Fatalf("BestLevel() on empty store = ok %v, err %v", ok, err)
	}

	if err := store.SaveProgress("kong", 1); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}
	store.SaveProgress("kong", 3)
	store.SaveProgress("other", 7)

	level, ok, err := store.BestLevel("kong")
	if err != nil || !ok || level != 3 {
		t.Errorf("BestLevel() = %d, %v, %v, expected 3, true, nil", level, ok, err)
	}

	// A final score on a later level counts too.
	store.SaveScore("kong", 10, 4)
	level, _, _ = store.BestLevel("kong")
	if level != 4 {
		t.Errorf("BestLevel() = %d, expected 4", level)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("kong", 100, 0)
	store.SaveProgress("kong", 2)
	store.SaveScore("other", 300, 0)

	if err := store.ClearScores("kong"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("kong", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if _, ok, _ := store.BestLevel("kong"); ok {
		t.Error("progress should be cleared with the scores")
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("other games should not be affected")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("kong")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("kong", 100, 0)
	store.SaveScore("kong", 300, 1)
	store.SaveProgress("kong", 2)

	stats, err = store.GetGameStats("kong")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.BestLevel != 2 {
		t.Errorf("BestLevel = %d, expected 2", stats.BestLevel)
	}
}
