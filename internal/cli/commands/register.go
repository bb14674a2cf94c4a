package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"InventoryManagement/internal/cli/api"
	"InventoryManagement/internal/cli/bootstrap"
	"InventoryManagement/internal/config"
	"InventoryManagement/internal/errs"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ErrLoginTaken — сервер ответил 409 на регистрацию.
var ErrLoginTaken = errors.New("username already in use")

// Register создаёт пользователя на сервере. Вход выполняется отдельно.
func Register(ctx context.Context, app *bootstrap.App, username, password string) error {
	endpoint := app.Config.ServerURL + "/register"
	resp, body, err := api.DoJSON(ctx, nil, http.MethodPost, endpoint, RegisterRequest{Username: username, Password: password}, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		return nil
	case http.StatusConflict:
		return ErrLoginTaken
	default:
		return &errs.StatusError{Code: resp.StatusCode, Message: api.MessageFromBody(body)}
	}
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and log in" }
func (registerCmd) Usage() string       { return "register <username> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	return withApp(ctx, cfg, false, func(app *bootstrap.App) error {
		if err := Register(ctx, app, args[0], args[1]); err != nil {
			return err
		}
		if err := app.Session.Authenticate(ctx, args[0], args[1], true); err != nil {
			return fmt.Errorf("registered, but login failed: %w", err)
		}
		fmt.Fprintln(Out, "Registered and logged in")
		return nil
	})
}

func init() { RegisterCmd(registerCmd{}) }
