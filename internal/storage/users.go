package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/tallyhq/tally/internal/models"
)

// CreateUser inserts a new account and returns the generated id. The
// password must already be hashed; this layer never sees plaintext.
func (s *Store) CreateUser(uid, passwordHash string) (int64, error) {
	if strings.TrimSpace(uid) == "" || passwordHash == "" {
		return 0, fmt.Errorf("%w: uid and password are required", ErrInvalidInput)
	}

	result, err := s.db.Exec(`INSERT INTO users (uid, password) VALUES (?, ?)`, uid, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateUID, uid)
		}
		return 0, err
	}

	return result.LastInsertId()
}

// GetUserByUID looks up an account by its unique identifier and returns
// the stored password hash alongside it, for credential checks.
func (s *Store) GetUserByUID(uid string) (models.User, string, error) {
	row := s.db.QueryRow(`SELECT id, uid, password FROM users WHERE uid = ?`, uid)

	var u models.User
	var hash string
	if err := row.Scan(&u.ID, &u.UID, &hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, "", fmt.Errorf("user %q: %w", uid, ErrNotFound)
		}
		return models.User{}, "", err
	}

	return u, hash, nil
}

// GetUserByID resolves a stored user id back to an account.
func (s *Store) GetUserByID(id int64) (models.User, error) {
	row := s.db.QueryRow(`SELECT id, uid FROM users WHERE id = ?`, id)

	var u models.User
	if err := row.Scan(&u.ID, &u.UID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return models.User{}, err
	}

	return u, nil
}

// DeleteUser removes an account. Habits and habit entries go with it via
// the foreign key cascades.
func (s *Store) DeleteUser(id int64) error {
	result, err := s.db.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
