package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tallyhq/tally/internal/storage"
)

// setupTestDB initializes a real database and returns its path plus a
// manager pointed at it.
func setupTestDB(t *testing.T) (string, *Manager) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := storage.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close test store: %v", err)
	}

	return dbPath, NewManager(dbPath)
}

func TestCreateAndList(t *testing.T) {
	_, mgr := setupTestDB(t)

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("got %d backups, want 1", len(backups))
	}
	if backups[0].Path != path {
		t.Errorf("List path = %q, want %q", backups[0].Path, path)
	}
	if backups[0].Size == 0 {
		t.Error("backup size is zero")
	}
}

func TestCreateMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))

	if _, err := mgr.Create(); err == nil {
		t.Error("Create succeeded for a missing database, want error")
	}
}

func TestCreateCollisionGetsCounterSuffix(t *testing.T) {
	_, mgr := setupTestDB(t)

	// Two backups in the same second must not overwrite each other.
	first, err := mgr.Create()
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	second, err := mgr.Create()
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}
	if first == second {
		t.Errorf("both backups share path %q", first)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 2 {
		t.Errorf("got %d backups, want 2", len(backups))
	}
}

func TestListEmptyDirectory(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "test.db"))

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("got %d backups, want 0", len(backups))
	}
}

func TestListIgnoresForeignFiles(t *testing.T) {
	_, mgr := setupTestDB(t)

	if _, err := mgr.Create(); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(mgr.Dir(), "notes.txt"), []byte("not a backup"), 0600); err != nil {
		t.Fatalf("failed to write foreign file: %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("got %d backups, want 1", len(backups))
	}
}

func TestRestoreRoundtrip(t *testing.T) {
	dbPath, mgr := setupTestDB(t)

	store := storage.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	userID, err := store.CreateUser("alice", "test-hash")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if _, err := store.CreateHabit(userID, "Read"); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Mutate the live database after the snapshot.
	store = storage.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := store.CreateHabit(userID, "Run"); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	store = storage.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("Load after restore failed: %v", err)
	}
	defer store.Close()

	habits, err := store.ListHabits(userID)
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(habits) != 1 || habits[0].Name != "Read" {
		t.Errorf("got habits %+v, want the pre-backup state", habits)
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	_, mgr := setupTestDB(t)

	if err := mgr.Restore(filepath.Join(mgr.Dir(), "tally-19990101-000000.db")); err == nil {
		t.Error("Restore succeeded for a missing backup, want error")
	}
}

func TestRestoreRejectsCorruptedBackup(t *testing.T) {
	_, mgr := setupTestDB(t)

	bad := filepath.Join(t.TempDir(), "bad.db")
	if err := os.WriteFile(bad, []byte("this is not sqlite"), 0600); err != nil {
		t.Fatalf("failed to write corrupted file: %v", err)
	}

	if err := mgr.Restore(bad); err == nil {
		t.Error("Restore succeeded for a corrupted backup, want error")
	}
}

func TestRestoreBacksUpCurrentDatabase(t *testing.T) {
	_, mgr := setupTestDB(t)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	// The restore leaves a safety backup alongside the explicit one.
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("got %d backups after restore, want at least 2", len(backups))
	}
}
