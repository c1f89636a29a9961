package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

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

func TestStoreSaveAndRetrieve(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveSession(4, 3, 42, 120); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if _, err := store.SaveSession(4, 4, 15, 60); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}

	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(sessions))
	}

	// Newest first
	if sessions[0].BoardWidth != 4 || sessions[0].BoardHeight != 4 || sessions[0].Moves != 15 {
		t.Errorf("Unexpected newest session: %+v", sessions[0])
	}
	if sessions[1].Moves != 42 || sessions[1].DurationSecs != 120 {
		t.Errorf("Unexpected oldest session: %+v", sessions[1])
	}
}

func TestStoreStats(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty database
	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Sessions != 0 || stats.TotalMoves != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	for _, moves := range []int{10, 20, 30} {
		if _, err := store.SaveSession(4, 3, moves, 30); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Sessions != 3 {
		t.Errorf("Sessions = %d, want 3", stats.Sessions)
	}
	if stats.TotalMoves != 60 {
		t.Errorf("TotalMoves = %d, want 60", stats.TotalMoves)
	}
	if stats.AvgMoves != 20 {
		t.Errorf("AvgMoves = %v, want 20", stats.AvgMoves)
	}
}

func TestStoreClearSessions(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveSession(4, 3, 5, 10); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("Expected no sessions after clear, got %d", len(sessions))
	}
}
