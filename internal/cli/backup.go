package cli

import (
	"fmt"
	"path/filepath"

	"github.com/tallyhq/tally/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.Path())

	path, err := mgr.Create()
	if err != nil {
		return err
	}

	fmt.Printf("Created backup: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.Path())

	backups, err := mgr.List()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n", b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), b.Size)
	}

	return nil
}

type BackupRestoreCmd struct {
	File string `arg:"" help:"Backup file name or path to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	// Close the live handle before swapping the file underneath it.
	if err := ctx.Store.Close(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.Path())

	path := c.File
	if filepath.Dir(path) == "." {
		path = filepath.Join(mgr.Dir(), path)
	}

	if err := mgr.Restore(path); err != nil {
		return err
	}

	fmt.Printf("Restored database from %s\n", filepath.Base(path))
	return nil
}
