package commands

import (
	"context"
	"fmt"

	"InventoryManagement/internal/cli/bootstrap"
	"InventoryManagement/internal/cli/repo"
	"InventoryManagement/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Check whether the stored session is still valid" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withApp(ctx, cfg, false, func(app *bootstrap.App) error {
		user, err := app.Store.Get(repo.KeyUsername)
		if err != nil {
			user = "<not stored>"
		}
		fmt.Fprintf(Out, "Server:  %s\n", cfg.ServerURL)
		fmt.Fprintf(Out, "User:    %s\n", user)
		if app.Session.Token() == "" {
			fmt.Fprintln(Out, "Session: none")
			return nil
		}
		st := app.Session.VerifySession(ctx)
		fmt.Fprintf(Out, "Session: %s\n", st.State)
		return nil
	})
}

func init() { RegisterCmd(statusCmd{}) }
