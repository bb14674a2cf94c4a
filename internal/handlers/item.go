package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"InventoryManagement/internal/errs"
	"InventoryManagement/internal/model"
	"InventoryManagement/internal/service"
)

// ItemHandler обрабатывает /items.
type ItemHandler struct {
	Service *service.InventoryService
	Logger  *zap.SugaredLogger
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(s *service.InventoryService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{Service: s, Logger: logger}
}

func (h *ItemHandler) writeList(w http.ResponseWriter, items []model.Item, err error) {
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	writeJSON(w, h.Logger, http.StatusOK, items)
}

func (h *ItemHandler) writeOne(w http.ResponseWriter, it *model.Item, err error) {
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, h.Logger, http.StatusOK, it)
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListItems(r.Context())
	h.writeList(w, items, err)
}

func (h *ItemHandler) ListByType(w http.ResponseWriter, r *http.Request) {
	upc, err := int64Param(r, "upc")
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	items, err := h.Service.ListItemsByType(r.Context(), upc)
	h.writeList(w, items, err)
}

func (h *ItemHandler) ListByOrder(w http.ResponseWriter, r *http.Request) {
	n, err := pathParam(r, "orderNumber")
	if err != nil {
		writeServiceError(w, h.Logger, errs.Validation("bad order number: %v", err))
		return
	}
	items, err := h.Service.ListItemsByOrder(r.Context(), n)
	h.writeList(w, items, err)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	it, err := h.Service.GetItem(r.Context(), id)
	h.writeOne(w, it, err)
}

func (h *ItemHandler) GetByQR(w http.ResponseWriter, r *http.Request) {
	qr, err := pathParam(r, "qr")
	if err != nil {
		writeServiceError(w, h.Logger, errs.Validation("bad qr code: %v", err))
		return
	}
	it, err := h.Service.GetItemByQR(r.Context(), qr)
	h.writeOne(w, it, err)
}

// Create POST /items: массив неидентифицированных экземпляров -> массив id в том же порядке.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var items []model.Item
	if err := decodeJSON(r, &items); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	ids, err := h.Service.CreateItems(r.Context(), items)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, h.Logger, http.StatusCreated, ids)
}

// Update PUT /items/id/{id}: полная замена документа.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	var it model.Item
	if err := decodeJSON(r, &it); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	if err := h.Service.UpdateItem(r.Context(), id, it); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	if err := h.Service.DeleteItem(r.Context(), id); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
