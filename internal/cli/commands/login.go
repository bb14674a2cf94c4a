package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"InventoryManagement/internal/cli/bootstrap"
	"InventoryManagement/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Log in and remember credentials for automatic re-login" }
func (loginCmd) Usage() string       { return "login [--no-save] <username> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	noSave := fs.Bool("no-save", false, "do not store username and password")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return ErrUsage
	}
	return withApp(ctx, cfg, false, func(app *bootstrap.App) error {
		if err := app.Session.Authenticate(ctx, rest[0], rest[1], !*noSave); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Logged in successfully")
		return nil
	})
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget stored credentials and session" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withApp(ctx, cfg, false, func(app *bootstrap.App) error {
		if err := app.Session.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Logged out")
		return nil
	})
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
}
