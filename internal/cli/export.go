package cli

import (
	"fmt"
	"os"

	"github.com/tallyhq/tally/internal/export"
)

type ExportCmd struct {
	Out string `help:"Write the snapshot to a file instead of stdout." short:"o"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return err
	}

	snapshot, err := export.Build(ctx.Store, user)
	if err != nil {
		return err
	}

	if c.Out == "" {
		return snapshot.Write(os.Stdout)
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := snapshot.Write(f); err != nil {
		return err
	}

	fmt.Printf("Exported %d habit(s) and %d entr(ies) to %s\n", len(snapshot.Habits), len(snapshot.Entries), c.Out)
	return nil
}
