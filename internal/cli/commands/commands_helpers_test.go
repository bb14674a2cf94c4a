package commands

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"InventoryManagement/internal/config"
	"InventoryManagement/internal/handlers"
	srvrepo "InventoryManagement/internal/repo"
	srvservice "InventoryManagement/internal/service"
)

// withTempConfig возвращает конфиг клиента, у которого секреты лежат во временном каталоге,
// чтобы артефакты (токен/логин/ключ) не попадали в настоящий профиль пользователя.
func withTempConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	return &config.Config{
		ServerURL:     serverURL,
		SecretDir:     t.TempDir(),
		Locale:        "en-US",
		SessionCookie: "auth_token",
	}
}

// startServer поднимает сервер инвентаря на in-memory SQLite с пользователем alice/secret.
func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := srvrepo.InitDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	logger := zap.NewNop().Sugar()

	users := srvservice.NewUserService(srvrepo.NewUserRepository(db))
	_, err = users.EnsureUser(context.Background(), "alice", "secret")
	require.NoError(t, err)
	inv := srvservice.NewInventoryService(srvrepo.NewItemTypeRepository(db), srvrepo.NewItemRepository(db), logger)

	h := handlers.NewHandler(users, inv, logger, &config.Config{AuthSecret: "cmd-secret"})
	ts := httptest.NewServer(h.Router)
	t.Cleanup(func() {
		ts.Close()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return ts
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// run выполняет команду и возвращает её вывод.
func run(t *testing.T, cfg *config.Config, cmd Command, args ...string) (string, error) {
	t.Helper()
	var err error
	out := withStdoutCapture(t, func() {
		err = cmd.Run(context.Background(), cfg, args)
	})
	return out, err
}
