package export

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/storage"
)

func setupTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store := storage.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBuild(t *testing.T) {
	store := setupTestStore(t)

	userID, err := store.CreateUser("alice", "test-hash")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	habitID, err := store.CreateHabit(userID, "Read")
	if err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	if _, err := store.CreateHabit(userID, "Run"); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	err = store.SubmitDay(userID, "2025-03-01", []models.HabitCheck{
		{HabitID: habitID, Completed: true},
	})
	if err != nil {
		t.Fatalf("SubmitDay failed: %v", err)
	}

	user := models.User{ID: userID, UID: "alice"}
	snap, err := Build(store, user)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, err := uuid.Parse(snap.SnapshotID); err != nil {
		t.Errorf("SnapshotID %q is not a uuid: %v", snap.SnapshotID, err)
	}
	if snap.ExportedAt.IsZero() {
		t.Error("ExportedAt is zero")
	}
	if snap.User != user {
		t.Errorf("User = %+v, want %+v", snap.User, user)
	}
	if len(snap.Habits) != 2 {
		t.Errorf("got %d habits, want 2", len(snap.Habits))
	}
	if len(snap.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(snap.Entries))
	}
	if snap.Entries[0].Date != "2025-03-01" || !snap.Entries[0].Completed {
		t.Errorf("unexpected entry %+v", snap.Entries[0])
	}
}

func TestBuildScopedToUser(t *testing.T) {
	store := setupTestStore(t)

	aliceID, err := store.CreateUser("alice", "test-hash")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	bobID, err := store.CreateUser("bob", "test-hash")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if _, err := store.CreateHabit(bobID, "Swim"); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}

	snap, err := Build(store, models.User{ID: aliceID, UID: "alice"})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(snap.Habits) != 0 || len(snap.Entries) != 0 {
		t.Errorf("snapshot leaked other user's data: %+v", snap)
	}
}

func TestSnapshotIDsAreUnique(t *testing.T) {
	store := setupTestStore(t)

	userID, err := store.CreateUser("alice", "test-hash")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	user := models.User{ID: userID, UID: "alice"}

	first, err := Build(store, user)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	second, err := Build(store, user)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if first.SnapshotID == second.SnapshotID {
		t.Errorf("two snapshots share id %q", first.SnapshotID)
	}
}

func TestWrite(t *testing.T) {
	store := setupTestStore(t)

	userID, err := store.CreateUser("alice", "test-hash")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if _, err := store.CreateHabit(userID, "Read"); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}

	snap, err := Build(store, models.User{ID: userID, UID: "alice"})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var buf bytes.Buffer
	if err := snap.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var decoded Snapshot
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.SnapshotID != snap.SnapshotID {
		t.Errorf("decoded SnapshotID = %q, want %q", decoded.SnapshotID, snap.SnapshotID)
	}
	if len(decoded.Habits) != 1 {
		t.Errorf("decoded %d habits, want 1", len(decoded.Habits))
	}
}
