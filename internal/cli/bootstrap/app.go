// Package bootstrap собирает зависимости CLI: хранилище секретов, сессию и клиент каталога.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"InventoryManagement/internal/cli/auth"
	"InventoryManagement/internal/cli/repo"
	fsrepo "InventoryManagement/internal/cli/repo/fs"
	"InventoryManagement/internal/cli/service"
	"InventoryManagement/internal/config"
	"InventoryManagement/internal/money"
)

// ErrNotLoggedIn — нет токена и нет сохранённых учётных данных.
var ErrNotLoggedIn = errors.New("not logged in: run login <username> <password>")

// App — собранные зависимости одной команды CLI.
type App struct {
	Config  *config.Config
	Logger  *zap.SugaredLogger
	Store   repo.SecretStore
	Session *auth.Manager
	Client  *service.InventoryClient
	Codec   *money.Codec
}

// NewLogger строит логгер CLI: development-формат, уровень Warn, с -v — Debug.
func NewLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

// Open собирает App по конфигу и возвращает (app, cleanup, error).
// cleanup дожидается фоновых попыток входа и сбрасывает буфер логгера.
func Open(cfg *config.Config) (*App, func() error, error) {
	if cfg == nil {
		return nil, nil, errors.New("nil config")
	}
	codec, err := money.NewCodec(cfg.Locale)
	if err != nil {
		return nil, nil, err
	}
	logger, err := NewLogger(cfg.Verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	sugar := logger.Sugar()

	dir := cfg.SecretDir
	if dir == "" {
		if dir, err = fsrepo.DefaultDir(); err != nil {
			return nil, nil, fmt.Errorf("secret dir: %w", err)
		}
	}
	store := fsrepo.SecretFSStore{Dir: dir}

	httpClient := &http.Client{}
	session := auth.NewManager(store, auth.Options{
		BaseURL:    cfg.ServerURL,
		HTTPClient: httpClient,
		CookieName: cfg.SessionCookie,
		Logger:     sugar.Named("session"),
	})
	client := service.NewInventoryClient(cfg.ServerURL, httpClient, session, sugar.Named("client"))

	app := &App{
		Config:  cfg,
		Logger:  sugar,
		Store:   store,
		Session: session,
		Client:  client,
		Codec:   codec,
	}
	cleanup := func() error {
		session.Wait()
		_ = logger.Sync()
		return nil
	}
	return app, cleanup, nil
}

// EnsureSession входит по сохранённым учётным данным, если токена ещё нет.
func (a *App) EnsureSession(ctx context.Context) error {
	if a.Session.Token() != "" {
		return nil
	}
	err := a.Session.AuthenticateFromStored(ctx)
	if errors.Is(err, auth.ErrNoStoredCredentials) {
		return ErrNotLoggedIn
	}
	return err
}
