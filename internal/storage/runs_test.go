package storage

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func TestSaveRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "invaders", Score: 120, TimeMs: 45300, Outcome: OutcomeGameOver})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("SaveRun() returned nil id")
	}

	runs, err := store.RecentRuns("invaders", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	if runs[0].ID != id {
		t.Errorf("Stored id %s, want %s", runs[0].ID, id)
	}
	if runs[0].Seconds() != "45.3" {
		t.Errorf("Seconds() = %q, want 45.3", runs[0].Seconds())
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)
	want := uuid.New()

	got, err := store.SaveRun(Run{ID: want, GameID: "invaders", Outcome: OutcomeVictory})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != want {
		t.Errorf("SaveRun() id = %s, want %s", got, want)
	}

	if _, err := store.SaveRun(Run{ID: want, GameID: "invaders", Outcome: OutcomeVictory}); err == nil {
		t.Error("Expected duplicate id to fail")
	}
}

func TestSaveRunRejectsOutcome(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{GameID: "invaders", Outcome: "abandoned"}); err == nil {
		t.Error("Expected invalid outcome to fail")
	}
}

func TestRecentRunsOrderAndFilter(t *testing.T) {
	store := openTestStore(t)

	for i, game := range []string{"invaders", "invaders_classic", "invaders", "invaders"} {
		if _, err := store.SaveRun(Run{GameID: game, Score: i * 10, Outcome: OutcomeGameOver}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("invaders", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs with limit, got %d", len(runs))
	}
	// Newest first
	if runs[0].Score != 30 || runs[1].Score != 20 {
		t.Errorf("Runs not in expected order: %d, %d", runs[0].Score, runs[1].Score)
	}

	all, err := store.RecentRuns("", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 runs across games, got %d", len(all))
	}
}

func TestBestRun(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun("invaders")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Fatalf("Expected no best run, got %+v", best)
	}

	store.SaveRun(Run{GameID: "invaders", Score: 500, TimeMs: 90000, Outcome: OutcomeVictory})
	store.SaveRun(Run{GameID: "invaders", Score: 500, TimeMs: 60000, Outcome: OutcomeVictory})
	store.SaveRun(Run{GameID: "invaders", Score: 200, TimeMs: 10000, Outcome: OutcomeGameOver})
	store.SaveRun(Run{GameID: "invaders_classic", Score: 900, TimeMs: 1000, Outcome: OutcomeVictory})

	best, err = store.BestRun("invaders")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil {
		t.Fatal("Expected a best run")
	}
	if best.Score != 500 || best.TimeMs != 60000 {
		t.Errorf("BestRun() = score %d time %d, want 500 / 60000", best.Score, best.TimeMs)
	}
	if best.Outcome != OutcomeVictory {
		t.Errorf("BestRun() outcome = %q", best.Outcome)
	}
}

func TestTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Run{
		{GameID: "invaders", Score: 100, TimeMs: 5000, Outcome: OutcomeGameOver},
		{GameID: "invaders", Score: 300, TimeMs: 9000, Outcome: OutcomeGameOver},
		{GameID: "invaders", Score: 300, TimeMs: 7000, Outcome: OutcomeVictory},
		{GameID: "invaders", Score: 200, TimeMs: 1000, Outcome: OutcomeGameOver},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("invaders", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].TimeMs != 7000 || runs[1].TimeMs != 9000 || runs[2].Score != 200 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
}
