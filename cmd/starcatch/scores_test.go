package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/starcatch/internal/games/starcatch"
	"github.com/vovakirdan/starcatch/internal/storage"
)

// withScoresFlags sets the scores flags for one test and restores them.
func withScoresFlags(t *testing.T, dbPath string, all, clear bool) {
	t.Helper()
	oldDB, oldAll, oldClear, oldTUI := flagDBPath, flagScoresAll, flagScoresClear, flagScoresTUI
	flagDBPath, flagScoresAll, flagScoresClear, flagScoresTUI = dbPath, all, clear, false
	t.Cleanup(func() {
		flagDBPath, flagScoresAll, flagScoresClear, flagScoresTUI = oldDB, oldAll, oldClear, oldTUI
	})
}

func seedScores(t *testing.T, dbPath string, scores ...int) {
	t.Helper()
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	for _, s := range scores {
		if _, err := store.SaveRun(storage.ScoreEntry{GameID: starcatch.GameID, Score: s}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
}

func TestShowScoresListsAllRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	seedScores(t, dbPath, 3, 9, 1)
	withScoresFlags(t, dbPath, true, false)

	if code := showScores(); code != 0 {
		t.Fatalf("showScores() = %d, expected 0", code)
	}
}

func TestShowScoresClearClosesStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	seedScores(t, dbPath, 5, 7)
	withScoresFlags(t, dbPath, false, true)

	if code := showScores(); code != 0 {
		t.Fatalf("showScores() = %d, expected 0", code)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	high, err := store.HighScore(starcatch.GameID)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() after clear = %d, expected 0", high)
	}
}

func TestShowScoresOpenFailureReturnsCode(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	withScoresFlags(t, filepath.Join(blocker, "scores.db"), false, false)

	if code := showScores(); code != 1 {
		t.Errorf("showScores() = %d, expected 1", code)
	}
}

func TestPrintBestWithoutStore(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("printBest(nil) panicked: %v", r)
		}
	}()
	printBest(nil, starcatch.GameID)
}
