package storage

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}

	t.Cleanup(func() { store.Close() })
	return store
}

func createTestUser(t *testing.T, store *Store, uid string) int64 {
	t.Helper()

	id, err := store.CreateUser(uid, "test-hash")
	if err != nil {
		t.Fatalf("failed to create user %q: %v", uid, err)
	}
	return id
}

func TestInitIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	store.Close()

	// A second init against the same file must apply nothing and succeed.
	store = NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("second init failed: %v", err)
	}
	defer store.Close()

	if _, err := store.CreateUser("alice", "hash"); err != nil {
		t.Errorf("store unusable after re-init: %v", err)
	}
}

func TestLoadWithoutInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))

	if err := store.Load(); err == nil {
		t.Error("Load() on a missing database should fail")
	}
}

func TestLoadExisting(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	createTestUser(t, store, "alice")
	store.Close()

	loaded := NewStore(dbPath)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	defer loaded.Close()

	if _, _, err := loaded.GetUserByUID("alice"); err != nil {
		t.Errorf("expected user to survive reopen: %v", err)
	}
}
