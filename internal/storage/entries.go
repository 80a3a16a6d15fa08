package storage

import (
	"fmt"
	"time"

	"github.com/tallyhq/tally/internal/constants"
	"github.com/tallyhq/tally/internal/models"
)

// SubmitDay records the completion state of each habit for one day, in a
// single transaction. A day can be submitted at most once per user: if
// any entry already exists for (user, date) the whole submission is
// rejected with ErrAlreadySubmitted. The UNIQUE(habit_id, date, user_id)
// constraint makes the guard hold even under concurrent submissions.
func (s *Store) SubmitDay(userID int64, date string, checks []models.HabitCheck) error {
	if userID <= 0 {
		return fmt.Errorf("%w: missing user id", ErrInvalidInput)
	}
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return fmt.Errorf("%w: invalid date %q (expected YYYY-MM-DD)", ErrInvalidInput, date)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRow(`SELECT COUNT(*) FROM habit_entries WHERE date = ? AND user_id = ?`, date, userID).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %s", ErrAlreadySubmitted, date)
	}

	for _, check := range checks {
		_, err := tx.Exec(`
			INSERT INTO habit_entries (date, habit_id, completed, user_id)
			VALUES (?, ?, ?, ?)`,
			date, check.HabitID, check.Completed, userID)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s", ErrAlreadySubmitted, date)
			}
			return err
		}
	}

	return tx.Commit()
}

// ListEntries returns all of a user's habit entries in insertion order.
func (s *Store) ListEntries(userID int64) ([]models.HabitEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, date, habit_id, completed, user_id
		FROM habit_entries WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.HabitEntry
	for rows.Next() {
		var e models.HabitEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.HabitID, &e.Completed, &e.UserID); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// EntryRecordsSince returns a user's entries joined with habit names,
// dated on or after since (YYYY-MM-DD), in insertion order. This is the
// stats aggregation input.
func (s *Store) EntryRecordsSince(userID int64, since string) ([]models.EntryRecord, error) {
	if _, err := time.Parse(constants.DateFormat, since); err != nil {
		return nil, fmt.Errorf("%w: invalid date %q (expected YYYY-MM-DD)", ErrInvalidInput, since)
	}

	rows, err := s.db.Query(`
		SELECT e.habit_id, h.name, e.date, e.completed
		FROM habit_entries e
		JOIN habits h ON h.id = e.habit_id
		WHERE e.user_id = ? AND e.date >= ?
		ORDER BY e.id`, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.EntryRecord
	for rows.Next() {
		var r models.EntryRecord
		if err := rows.Scan(&r.HabitID, &r.Name, &r.Date, &r.Completed); err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// DeleteEntries removes every habit entry belonging to one user and
// returns the number of rows removed.
func (s *Store) DeleteEntries(userID int64) (int64, error) {
	result, err := s.db.Exec(`DELETE FROM habit_entries WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteAllEntries removes every habit entry for every user. Only the
// explicit test-data reset command calls this.
func (s *Store) DeleteAllEntries() (int64, error) {
	result, err := s.db.Exec(`DELETE FROM habit_entries`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
