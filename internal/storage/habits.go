package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/tallyhq/tally/internal/models"
)

// CreateHabit inserts a habit for a user and returns the generated id.
// Blank names (after trimming) and missing user ids are rejected.
func (s *Store) CreateHabit(userID int64, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("%w: habit name cannot be empty", ErrInvalidInput)
	}
	if userID <= 0 {
		return 0, fmt.Errorf("%w: missing user id", ErrInvalidInput)
	}

	result, err := s.db.Exec(`INSERT INTO habits (name, user_id) VALUES (?, ?)`, name, userID)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// GetHabit retrieves a habit by id.
func (s *Store) GetHabit(id int64) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT id, name, user_id FROM habits WHERE id = ?`, id)

	var h models.Habit
	if err := row.Scan(&h.ID, &h.Name, &h.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, fmt.Errorf("habit %d: %w", id, ErrNotFound)
		}
		return models.Habit{}, err
	}

	return h, nil
}

// ListHabits returns all of a user's habits in insertion order.
func (s *Store) ListHabits(userID int64) ([]models.Habit, error) {
	rows, err := s.db.Query(`SELECT id, name, user_id FROM habits WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.Name, &h.UserID); err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

// ListHabitsForDay returns a user's habits annotated with the durable
// completion state recorded for the given day. Habits without an entry
// for that day report Recorded=false, Completed=false.
func (s *Store) ListHabitsForDay(userID int64, date string) ([]models.HabitStatus, error) {
	rows, err := s.db.Query(`
		SELECT h.id, h.name, h.user_id, e.completed
		FROM habits h
		LEFT JOIN habit_entries e ON e.habit_id = h.id AND e.date = ? AND e.user_id = h.user_id
		WHERE h.user_id = ?
		ORDER BY h.id`, date, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []models.HabitStatus
	for rows.Next() {
		var st models.HabitStatus
		var completed sql.NullBool
		if err := rows.Scan(&st.ID, &st.Name, &st.UserID, &completed); err != nil {
			return nil, err
		}
		st.Recorded = completed.Valid
		st.Completed = completed.Valid && completed.Bool
		statuses = append(statuses, st)
	}

	return statuses, rows.Err()
}

// RenameHabit changes a habit's name. The query is parameterized, so
// names containing quotes are handled like any other.
func (s *Store) RenameHabit(id int64, newName string) error {
	if strings.TrimSpace(newName) == "" {
		return fmt.Errorf("%w: habit name cannot be empty", ErrInvalidInput)
	}

	result, err := s.db.Exec(`UPDATE habits SET name = ? WHERE id = ?`, newName, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit %d: %w", id, ErrNotFound)
	}

	return nil
}

// DeleteHabit removes a habit; its entries are removed by the foreign
// key cascade.
func (s *Store) DeleteHabit(id int64) error {
	result, err := s.db.Exec(`DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit %d: %w", id, ErrNotFound)
	}

	return nil
}
