package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"InventoryManagement/internal/model"
	"InventoryManagement/internal/service"
)

// ItemTypeHandler обрабатывает /itemtypes.
type ItemTypeHandler struct {
	Service *service.InventoryService
	Logger  *zap.SugaredLogger
}

func NewItemTypeHandler(s *service.InventoryService, logger *zap.SugaredLogger) *ItemTypeHandler {
	return &ItemTypeHandler{Service: s, Logger: logger}
}

func (h *ItemTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.Service.ListItemTypes(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, h.Logger, http.StatusOK, types)
}

func (h *ItemTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	upc, err := int64Param(r, "upc")
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	t, err := h.Service.GetItemType(r.Context(), upc)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, h.Logger, http.StatusOK, t)
}

func (h *ItemTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var t model.ItemType
	if err := decodeJSON(r, &t); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	if err := h.Service.CreateItemType(r.Context(), t); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *ItemTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	upc, err := int64Param(r, "upc")
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	var t model.ItemType
	if err := decodeJSON(r, &t); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	if err := h.Service.UpdateItemType(r.Context(), upc, t); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *ItemTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	upc, err := int64Param(r, "upc")
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	if err := h.Service.DeleteItemType(r.Context(), upc); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
