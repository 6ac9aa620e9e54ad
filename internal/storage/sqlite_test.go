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

	// Check that the file was created
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

func TestStoreReopenKeepsRounds(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRound(RoundRecord{Host: "tui", Pieces: 3, EndReason: EndQuit}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	rounds, err := store.RecentRounds(10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("Expected 1 round after reopen, got %d", len(rounds))
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	records := []RoundRecord{
		{Host: "tui", Pieces: 10, RowsCleared: 1, Ticks: 300, EndReason: EndTopOut},
		{Host: "ssh", Pieces: 42, RowsCleared: 7, Ticks: 1200, EndReason: EndTopOut},
		{Host: "window", Pieces: 5, RowsCleared: 0, Ticks: 90, EndReason: EndQuit},
	}
	for _, r := range records {
		id, err := store.SaveRound(r)
		if err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
		if id <= 0 {
			t.Errorf("Expected positive ID, got %d", id)
		}
	}

	rounds, err := store.RecentRounds(10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}

	// Newest first
	if rounds[0].Host != "window" || rounds[2].Host != "tui" {
		t.Errorf("Rounds not newest first: %+v", rounds)
	}
	if rounds[1].Pieces != 42 || rounds[1].RowsCleared != 7 || rounds[1].Ticks != 1200 {
		t.Errorf("Round fields not preserved: %+v", rounds[1])
	}
	if rounds[0].EndReason != EndQuit {
		t.Errorf("Expected end reason %q, got %q", EndQuit, rounds[0].EndReason)
	}
	if rounds[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRound(RoundRecord{Host: "tui", Pieces: i, EndReason: EndTopOut})
	}

	rounds, err := store.RecentRounds(3)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Errorf("Expected 3 rounds with limit, got %d", len(rounds))
	}
	if rounds[0].Pieces != 4 || rounds[2].Pieces != 2 {
		t.Errorf("Rounds not in expected order: %+v", rounds)
	}
}

func TestStoreSaveRejectsIncomplete(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRound(RoundRecord{Pieces: 1, EndReason: EndTopOut}); err == nil {
		t.Error("Expected error for missing host")
	}
	if _, err := store.SaveRound(RoundRecord{Host: "tui", Pieces: 1}); err == nil {
		t.Error("Expected error for missing end reason")
	}
}

func TestStoreSummary(t *testing.T) {
	store := openTestStore(t)

	// Empty store
	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Rounds != 0 || sum.BestRows != 0 || !sum.LastPlayed.IsZero() {
		t.Errorf("Expected empty summary, got %+v", sum)
	}

	store.SaveRound(RoundRecord{Host: "tui", Pieces: 10, RowsCleared: 2, EndReason: EndTopOut})
	store.SaveRound(RoundRecord{Host: "tui", Pieces: 30, RowsCleared: 9, EndReason: EndTopOut})
	store.SaveRound(RoundRecord{Host: "ssh", Pieces: 2, RowsCleared: 0, EndReason: EndQuit})

	sum, err = store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Rounds != 3 {
		t.Errorf("Expected 3 rounds, got %d", sum.Rounds)
	}
	if sum.TotalPieces != 42 {
		t.Errorf("Expected 42 pieces, got %d", sum.TotalPieces)
	}
	if sum.TotalRows != 11 {
		t.Errorf("Expected 11 rows, got %d", sum.TotalRows)
	}
	if sum.BestRows != 9 {
		t.Errorf("Expected best of 9 rows, got %d", sum.BestRows)
	}
}

func TestStoreClearRounds(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(RoundRecord{Host: "tui", Pieces: 1, EndReason: EndTopOut})
	store.SaveRound(RoundRecord{Host: "tui", Pieces: 2, EndReason: EndTopOut})

	if err := store.ClearRounds(); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	rounds, _ := store.RecentRounds(10)
	if len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}
}
