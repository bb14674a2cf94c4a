package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"InventoryManagement/internal/config"
	"InventoryManagement/internal/errs"
	"InventoryManagement/internal/middleware"
	"InventoryManagement/internal/service"
)

// UserHandler обрабатывает вход, регистрацию и проверку сессии.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Authenticate POST /authenticate. При успехе выставляет cookie сессии,
// при неудаче отвечает 401 с текстом ошибки в теле.
func (h *UserHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	user, err := h.UserService.Login(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, errs.ErrValidation):
		http.Error(w, "You must submit a username and password", http.StatusBadRequest)
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		h.Logger.Warnw("authentication failed", "username", req.Username, "remote", r.RemoteAddr)
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	case err != nil:
		h.Logger.Errorw("authentication error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("failed to set login cookie", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Register POST /register. Создаёт пользователя и сразу выставляет cookie сессии.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	user, err := h.UserService.Register(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, errs.ErrValidation):
		http.Error(w, "You must submit a username and password", http.StatusBadRequest)
		return
	case errors.Is(err, service.ErrLoginTaken):
		http.Error(w, "Username already taken", http.StatusConflict)
		return
	case err != nil:
		h.Logger.Errorw("register error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("failed to set login cookie", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.Logger.Infow("user registered", "username", user.Username)
	w.WriteHeader(http.StatusCreated)
}

// CheckAuth GET /checkauth: 200, если cookie сессии валиден, иначе 401.
func (h *UserHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.WriteHeader(http.StatusOK)
}
