package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/tallyhq/tally/internal/auth"
	"github.com/tallyhq/tally/internal/storage"
	"github.com/tallyhq/tally/internal/validation"
)

type LoginCmd struct {
	User     string `help:"Username." short:"u"`
	Password string `help:"Password. Prompted for when omitted." short:"p"`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if err := promptCredentials(&c.User, &c.Password, "Log in"); err != nil {
		return err
	}

	user, err := ctx.Auth.Login(c.User, c.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return fmt.Errorf("login failed: %w", err)
		}
		return err
	}

	fmt.Printf("Logged in as %s\n", user.UID)
	return nil
}

type SignupCmd struct {
	User     string `help:"Username." short:"u"`
	Password string `help:"Password. Prompted for when omitted." short:"p"`
}

func (c *SignupCmd) Run(ctx *Context) error {
	if err := promptCredentials(&c.User, &c.Password, "Sign up"); err != nil {
		return err
	}

	user, err := ctx.Auth.SignUp(c.User, c.Password)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateUID) {
			return fmt.Errorf("user %q already exists, try 'tally login'", c.User)
		}
		return err
	}

	fmt.Printf("Welcome, %s. You are now logged in.\n", user.UID)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Auth.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	user, err := ctx.Auth.CurrentUser()
	if err != nil {
		if errors.Is(err, auth.ErrNoUser) {
			fmt.Println("Not logged in.")
			return nil
		}
		return err
	}

	fmt.Printf("%s (id %d)\n", user.UID, user.ID)
	return nil
}

// promptCredentials fills in whichever of user/password were not given
// as flags, using an interactive form.
func promptCredentials(user, password *string, title string) error {
	var fields []huh.Field
	if *user == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Value(user).
			Validate(validation.UID))
	}
	if *password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(password).
			Validate(validation.Password))
	}

	if len(fields) == 0 {
		return nil
	}

	form := huh.NewForm(huh.NewGroup(fields...).Title(title))
	if err := form.Run(); err != nil {
		return fmt.Errorf("cancelled: %w", err)
	}

	return nil
}
