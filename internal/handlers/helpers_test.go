package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"InventoryManagement/internal/config"
	"InventoryManagement/internal/handlers"
	"InventoryManagement/internal/middleware"
	"InventoryManagement/internal/repo"
	"InventoryManagement/internal/service"
)

// newHandlersTestRouter собирает роутер поверх отдельной in-memory SQLite и создаёт пользователя alice/secret.
func newHandlersTestRouter(t *testing.T) (http.Handler, *config.Config) {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()

	db, err := repo.InitDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	userSvc := service.NewUserService(repo.NewUserRepository(db))
	_, err = userSvc.EnsureUser(context.Background(), "alice", "secret")
	require.NoError(t, err)
	invSvc := service.NewInventoryService(repo.NewItemTypeRepository(db), repo.NewItemRepository(db), logger)

	h := handlers.NewHandler(userSvc, invSvc, logger, cfg)
	return h.Router, cfg
}

func addAuth(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

// do выполняет запрос от имени пользователя 1 (если auth) и возвращает ответ.
func do(t *testing.T, router http.Handler, cfg *config.Config, method, target string, body any, auth bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		addAuth(t, req, 1, cfg.AuthSecret)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
