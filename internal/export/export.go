// Package export writes a portable JSON snapshot of one user's data.
package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/storage"
)

// Snapshot is a self-describing dump of a user's habits and entries.
// Each export gets its own id so snapshots can be told apart after the
// file is renamed or copied around.
type Snapshot struct {
	SnapshotID string              `json:"snapshot_id"`
	ExportedAt time.Time           `json:"exported_at"`
	User       models.User         `json:"user"`
	Habits     []models.Habit      `json:"habits"`
	Entries    []models.HabitEntry `json:"entries"`
}

// Build collects a user's habits and entries into a Snapshot.
func Build(store *storage.Store, user models.User) (Snapshot, error) {
	habits, err := store.ListHabits(user.ID)
	if err != nil {
		return Snapshot{}, err
	}

	entries, err := store.ListEntries(user.ID)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		SnapshotID: uuid.New().String(),
		ExportedAt: time.Now().UTC(),
		User:       user,
		Habits:     habits,
		Entries:    entries,
	}, nil
}

// Write encodes the snapshot as indented JSON.
func (s Snapshot) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
