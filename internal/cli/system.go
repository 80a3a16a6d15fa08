package cli

import (
	"fmt"
	"os"

	"github.com/tallyhq/tally/internal/session"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	fmt.Printf("Initialized storage at %s\n", ctx.Store.Path())
	return nil
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *Context) error {
	return ctx.Store.Init()
}

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Printf("Database: %s\n", ctx.Store.Path())

	info, err := os.Stat(ctx.Store.Path())
	if err != nil {
		fmt.Println("  ✗ database file missing, run 'tally init'")
		return nil
	}
	fmt.Printf("  ✓ file exists (%d bytes)\n", info.Size())

	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("  ✗ cannot open: %v\n", err)
		return nil
	}
	fmt.Println("  ✓ opens and schema version is compatible")

	if err := ctx.Store.DB().Ping(); err != nil {
		fmt.Printf("  ✗ ping failed: %v\n", err)
		return nil
	}
	fmt.Println("  ✓ responds to queries")

	if _, err := session.CurrentUserID(); err == nil {
		fmt.Println("  ✓ active session found in keyring")
	} else {
		fmt.Println("  - no active session")
	}

	return nil
}

// ResetCmd deletes habit entries. Without flags it clears only the
// logged-in user's entries; --all-users clears everything, which exists
// for wiping test data.
type ResetCmd struct {
	AllUsers bool `help:"Delete entries for every user, not just yours."`
	Force    bool `help:"Skip the confirmation prompt." short:"f"`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if !c.Force {
		return fmt.Errorf("this permanently deletes habit entries; re-run with --force to confirm")
	}

	if c.AllUsers {
		n, err := ctx.Store.DeleteAllEntries()
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d entr(ies) across all users\n", n)
		return nil
	}

	user, err := ctx.requireUser()
	if err != nil {
		return err
	}

	n, err := ctx.Store.DeleteEntries(user.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Deleted %d entr(ies) for %s\n", n, user.UID)
	return nil
}
