// Package auth resolves and establishes the active local account.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tallyhq/tally/internal/logger"
	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/session"
	"github.com/tallyhq/tally/internal/storage"
)

var (
	// ErrNoUser is returned when no account is logged in.
	ErrNoUser = errors.New("no authenticated user")
	// ErrInvalidCredentials covers both an unknown uid and a wrong
	// password; callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Service performs login, sign-up and current-user resolution against an
// injected store. The active user id persists in the OS keyring between
// invocations.
type Service struct {
	store *storage.Store
}

func NewService(store *storage.Store) *Service {
	return &Service{store: store}
}

// CurrentUser resolves the persisted user id to an account. A stale id
// (account since removed) clears the stored session as a repair action
// and reports ErrNoUser.
func (s *Service) CurrentUser() (models.User, error) {
	id, err := session.CurrentUserID()
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return models.User{}, ErrNoUser
		}
		return models.User{}, err
	}

	user, err := s.store.GetUserByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			logger.Warn("stored session references a missing user, clearing it", "id", id)
			if clearErr := session.Clear(); clearErr != nil {
				logger.Error("failed to clear stale session", "error", clearErr)
			}
			return models.User{}, ErrNoUser
		}
		return models.User{}, err
	}

	return user, nil
}

// CurrentUserID returns just the active account's id.
func (s *Service) CurrentUserID() (int64, error) {
	user, err := s.CurrentUser()
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Login verifies credentials and persists the account id on success.
func (s *Service) Login(uid, password string) (models.User, error) {
	user, hash, err := s.store.GetUserByUID(uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}

	if err := session.SetCurrentUserID(user.ID); err != nil {
		return models.User{}, err
	}

	logger.Info("user logged in", "uid", user.UID)
	return user, nil
}

// SignUp creates a new account, stores a bcrypt hash of the password and
// logs the account in.
func (s *Service) SignUp(uid, password string) (models.User, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: uid and password are required", storage.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.store.CreateUser(uid, string(hash))
	if err != nil {
		return models.User{}, err
	}

	if err := session.SetCurrentUserID(id); err != nil {
		return models.User{}, err
	}

	logger.Info("user signed up", "uid", uid)
	return models.User{ID: id, UID: uid}, nil
}

// Logout clears the persisted session. Logging out with no session is
// not an error.
func (s *Service) Logout() error {
	return session.Clear()
}
