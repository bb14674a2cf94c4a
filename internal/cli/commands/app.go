package commands

import (
	"context"
	"strconv"
	"strings"

	"InventoryManagement/internal/cli/bootstrap"
	"InventoryManagement/internal/config"
	"InventoryManagement/internal/money"
)

// withApp собирает зависимости команды. При needAuth и отсутствии токена
// сначала выполняется вход по сохранённым учётным данным.
func withApp(ctx context.Context, cfg *config.Config, needAuth bool, fn func(app *bootstrap.App) error) error {
	app, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()
	if needAuth {
		if err := app.EnsureSession(ctx); err != nil {
			return err
		}
	}
	return fn(app)
}

// parseUPC разбирает UPC из аргумента; ошибка разбора означает неверное использование.
func parseUPC(arg string) (int64, error) {
	upc, err := money.ParseIdentifier(arg)
	if err != nil {
		return 0, ErrUsage
	}
	return upc, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id < 0 {
		return 0, ErrUsage
	}
	return id, nil
}

func optionalText(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}
