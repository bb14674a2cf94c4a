package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"InventoryManagement/internal/errs"
	"InventoryManagement/internal/repo"
	"InventoryManagement/internal/service"
)

func writeJSON(w http.ResponseWriter, logger *zap.SugaredLogger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeServiceError переводит ошибку сервиса в HTTP-статус.
func writeServiceError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repo.ErrUnknownType):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repo.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, repo.ErrDuplicate), errors.Is(err, repo.ErrInUse), errors.Is(err, service.ErrLoginTaken):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Errorw("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// pathParam возвращает раскодированный параметр пути. chi маршрутизирует по RawPath,
// если он задан, и тогда параметр приходит в закодированном виде.
func pathParam(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v, nil
	}
	return url.PathUnescape(v)
}

func int64Param(r *http.Request, name string) (int64, error) {
	s, err := pathParam(r, name)
	if err != nil {
		return 0, errs.Validation("bad %s: %v", name, err)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.Validation("bad %s %q", name, s)
	}
	return n, nil
}

func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return errs.Validation("invalid request body: %v", err)
	}
	return nil
}
