// Package session persists the currently authenticated user's id in the
// OS keyring.
package session

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/zalando/go-keyring"

	"github.com/tallyhq/tally/internal/constants"
)

var (
	// ErrNoSession is returned when no user id is stored.
	ErrNoSession = errors.New("no active session")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// CurrentUserID retrieves the persisted user id. Returns ErrNoSession
// when nothing is stored.
func CurrentUserID() (int64, error) {
	stored, err := keyring.Get(constants.AppName, constants.KeyringSessionKey)
	if err != nil {
		if err == keyring.ErrNotFound {
			return 0, ErrNoSession
		}
		return 0, fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}

	id, err := strconv.ParseInt(stored, 10, 64)
	if err != nil {
		// A corrupted entry is as good as no session; let the caller
		// repair it with Clear.
		return 0, ErrNoSession
	}

	return id, nil
}

// SetCurrentUserID persists the user id.
func SetCurrentUserID(id int64) error {
	if id <= 0 {
		return errors.New("user id must be positive")
	}
	if err := keyring.Set(constants.AppName, constants.KeyringSessionKey, strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("failed to store session in keyring: %w", err)
	}
	return nil
}

// Clear removes the persisted user id. Clearing an empty session is not
// an error.
func Clear() error {
	err := keyring.Delete(constants.AppName, constants.KeyringSessionKey)
	if err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("failed to clear session from keyring: %w", err)
	}
	return nil
}
