// Package cli implements the tally commands.
package cli

import (
	"errors"
	"fmt"

	"github.com/tallyhq/tally/internal/auth"
	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/storage"
)

// Context carries the wired dependencies into every command's Run.
type Context struct {
	Store *storage.Store
	Auth  *auth.Service
}

// requireUser resolves the active account or fails with a login hint.
func (c *Context) requireUser() (models.User, error) {
	user, err := c.Auth.CurrentUser()
	if err != nil {
		if errors.Is(err, auth.ErrNoUser) {
			return models.User{}, fmt.Errorf("not logged in, run 'tally login' first")
		}
		return models.User{}, err
	}
	return user, nil
}
