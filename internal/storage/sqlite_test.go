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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("platformer", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("platformer", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
		if scores[i].GameID != "platformer" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		if _, err := store.SaveScore("platformer", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("platformer", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 140 {
		t.Errorf("Expected top score 140, got %d", scores[0].Score)
	}

	scores, err = store.TopScores("platformer", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Non-positive limit should default to 10, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("platformer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}

	store.SaveScore("platformer", 300)
	store.SaveScore("platformer", 1200)
	store.SaveScore("platformer", 800)

	high, err = store.HighScore("platformer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1200 {
		t.Errorf("Expected high score 1200, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("platformer", 100)
	store.SaveScore("other", 100)

	if err := store.ClearScores("platformer"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.AllScores("platformer")
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
	scores, _ = store.AllScores("other")
	if len(scores) != 1 {
		t.Errorf("Clear should not touch other games, got %d scores", len(scores))
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		store.SaveScore("platformer", i)
	}

	scores, err := store.AllScores("platformer")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
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

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.platformer/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".platformer", "test.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}

func TestStoreLevelRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []LevelRun{
		{LevelID: 1, Coins: 3, Stomps: 1, Deaths: 2, Cleared: true, Ticks: 900},
		{LevelID: 1, Coins: 5, Stomps: 0, Deaths: 0, Cleared: true, Ticks: 700},
		{LevelID: 1, Coins: 1, Stomps: 0, Deaths: 3, Cleared: false, Ticks: 300},
		{LevelID: 2, Coins: 0, Stomps: 0, Deaths: 1, Cleared: false, Ticks: 120},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	st, err := store.LevelStats(1)
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if st.Runs != 3 || st.Clears != 2 || st.Deaths != 5 {
		t.Errorf("LevelStats(1) = %+v", st)
	}
	if st.BestCoins != 5 || st.FewestTicks != 700 {
		t.Errorf("LevelStats(1) best = %d coins, %d ticks", st.BestCoins, st.FewestTicks)
	}

	st, err = store.LevelStats(2)
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if st.Clears != 0 || st.FewestTicks != 0 {
		t.Errorf("uncleared level should report zero fewest ticks, got %+v", st)
	}

	st, err = store.LevelStats(9)
	if err != nil {
		t.Fatalf("LevelStats() for unplayed level failed: %v", err)
	}
	if st.LevelID != 9 || st.Runs != 0 {
		t.Errorf("unplayed level stats = %+v", st)
	}

	all, err := store.AllLevelStats()
	if err != nil {
		t.Fatalf("AllLevelStats() failed: %v", err)
	}
	if len(all) != 2 || all[0].LevelID != 1 || all[1].LevelID != 2 {
		t.Errorf("AllLevelStats() = %+v", all)
	}
}
