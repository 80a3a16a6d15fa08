package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/tallyhq/tally/internal/auth"
	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/constants"
	apperrors "github.com/tallyhq/tally/internal/errors"
	"github.com/tallyhq/tally/internal/logger"
	"github.com/tallyhq/tally/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	DB      string `help:"Database file path." env:"TALLY_DB" type:"path" default:"~/.config/tally/tally.db"`
	Debug   bool   `help:"Enable debug logging to stderr." env:"TALLY_DEBUG"`

	Init    cli.InitCmd    `cmd:"" help:"Initialize tally storage."`
	Migrate cli.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`

	Signup cli.SignupCmd `cmd:"" help:"Create a local account."`
	Login  cli.LoginCmd  `cmd:"" help:"Log in to a local account."`
	Logout cli.LogoutCmd `cmd:"" help:"Log out."`
	Whoami cli.WhoamiCmd `cmd:"" help:"Show the active account."`

	Habit  cli.HabitCmd  `cmd:"" help:"Manage habits."`
	Today  cli.TodayCmd  `cmd:"" help:"Check off today's habits interactively." default:"1"`
	Submit cli.SubmitCmd `cmd:"" help:"Submit a day's habits without the interactive screen."`
	Stats  cli.StatsCmd  `cmd:"" help:"Show completion rates."`

	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`

	Export cli.ExportCmd `cmd:"" help:"Export your habits and entries as JSON."`
	Reset  cli.ResetCmd  `cmd:"" help:"Delete habit entries (test-data reset)."`
}

// commands that manage the database file itself and must not require a
// loadable database up front
var noPreload = map[string]bool{
	"init":    true,
	"migrate": true,
	"doctor":  true,
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Local habit tracker with daily check-off and completion stats"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.DB),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store := storage.NewStore(CLI.DB)
	appCtx := &cli.Context{
		Store: store,
		Auth:  auth.NewService(store),
	}

	command := ""
	if ctx.Selected() != nil {
		command = strings.Fields(ctx.Command())[0]
	}
	if !noPreload[command] {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}
