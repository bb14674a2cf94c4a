package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"InventoryManagement/internal/cli/api"
	"InventoryManagement/internal/errs"
	"InventoryManagement/internal/model"
)

// InventoryService описывает юзкейс-уровень работы с каталогом на сервере.
// Каждая операция возвращает либо значение, либо ошибку из пакета errs.
type InventoryService interface {
	ListItemTypes(ctx context.Context) ([]model.ItemType, error)
	GetItemType(ctx context.Context, upc int64) (model.ItemType, error)
	CreateItemType(ctx context.Context, t model.ItemType) error
	UpdateItemType(ctx context.Context, upc int64, t model.ItemType) error
	DeleteItemType(ctx context.Context, upc int64) error

	ListItems(ctx context.Context) ([]model.Item, error)
	ListItemsByType(ctx context.Context, upc int64) ([]model.Item, error)
	ListItemsByOrder(ctx context.Context, orderNumber string) ([]model.Item, error)
	GetItem(ctx context.Context, id int64) (model.Item, error)
	GetItemByQR(ctx context.Context, qr string) (model.Item, error)
	// CreateItems создаёт экземпляры пакетом и возвращает id в порядке входа.
	CreateItems(ctx context.Context, items []model.Item) ([]int64, error)
	// UpdateItem полностью заменяет документ экземпляра.
	UpdateItem(ctx context.Context, id int64, it model.Item) error
	DeleteItem(ctx context.Context, id int64) error
	// CheckIn присваивает заказанному экземпляру QR-код и переводит его в InStock.
	CheckIn(ctx context.Context, id int64, qr string) (model.Item, error)
}

// InventoryClient — HTTP-реализация InventoryService.
type InventoryClient struct {
	baseURL string
	http    *http.Client
	session Session
	log     *zap.SugaredLogger
}

var _ InventoryService = (*InventoryClient)(nil)

// NewInventoryClient конструктор клиента. baseURL — например "https://localhost:8081".
func NewInventoryClient(baseURL string, client *http.Client, session Session, logger *zap.SugaredLogger) *InventoryClient {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &InventoryClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    client,
		session: session,
		log:     logger,
	}
}

// do выполняет авторизованный вызов и классифицирует ответ.
// 401 переводит сессию в NotAttempted и запускает повторный вход, но сам вызов не повторяет.
// out == nil означает, что тело ответа не разбирается.
func (c *InventoryClient) do(ctx context.Context, op, method, path string, payload, out any) error {
	resp, body, err := api.DoJSON(ctx, c.http, method, c.baseURL+path, payload, c.session.Token())
	if err != nil {
		c.log.Errorw("request failed", "op", op, "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.log.Warnw("session expired, re-authenticating", "op", op)
		c.session.Expire(ctx)
		return fmt.Errorf("%s: %w", op, errs.ErrSessionExpired)
	case resp.StatusCode/100 != 2:
		msg := api.MessageFromBody(body)
		c.log.Warnw("unexpected response status", "op", op, "status", resp.StatusCode, "body", msg)
		return fmt.Errorf("%s: %w", op, &errs.StatusError{Code: resp.StatusCode, Message: msg})
	}

	if out == nil {
		return nil
	}
	// null и пустое тело — не результат, а ошибка разбора
	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		c.log.Errorw("failed to decode response", "op", op, "error", "empty or null body")
		return fmt.Errorf("%s: %w: empty or null body", op, errs.ErrDecode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.log.Errorw("failed to decode response", "op", op, "error", err)
		return fmt.Errorf("%s: %w: %v", op, errs.ErrDecode, err)
	}
	return nil
}

// requireIdentified проверяет, что сервер вернул экземпляры с id.
func (c *InventoryClient) requireIdentified(op string, items ...model.Item) error {
	for i, it := range items {
		if !it.Identified() {
			c.log.Errorw("failed to decode response", "op", op, "error", "item without id", "index", i)
			return fmt.Errorf("%s: %w: item %d has no id", op, errs.ErrDecode, i)
		}
	}
	return nil
}

// listItems — общий GET для операций, возвращающих список экземпляров.
func (c *InventoryClient) listItems(ctx context.Context, op, path string) ([]model.Item, error) {
	var out []model.Item
	if err := c.do(ctx, op, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if err := c.requireIdentified(op, out...); err != nil {
		return nil, err
	}
	return out, nil
}

// getItem — общий GET для операций, возвращающих один экземпляр.
func (c *InventoryClient) getItem(ctx context.Context, op, path string) (model.Item, error) {
	var out model.Item
	if err := c.do(ctx, op, http.MethodGet, path, nil, &out); err != nil {
		return model.Item{}, err
	}
	if err := c.requireIdentified(op, out); err != nil {
		return model.Item{}, err
	}
	return out, nil
}

func upcPath(prefix string, upc int64) string {
	return prefix + strconv.FormatInt(upc, 10)
}

// ListItemTypes GET /itemtypes.
func (c *InventoryClient) ListItemTypes(ctx context.Context) ([]model.ItemType, error) {
	var out []model.ItemType
	if err := c.do(ctx, "list item types", http.MethodGet, "/itemtypes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetItemType GET /itemtypes/{upc}.
func (c *InventoryClient) GetItemType(ctx context.Context, upc int64) (model.ItemType, error) {
	var out model.ItemType
	if err := c.do(ctx, "get item type", http.MethodGet, upcPath("/itemtypes/", upc), nil, &out); err != nil {
		return model.ItemType{}, err
	}
	return out, nil
}

// CreateItemType POST /itemtypes.
func (c *InventoryClient) CreateItemType(ctx context.Context, t model.ItemType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	return c.do(ctx, "create item type", http.MethodPost, "/itemtypes", t, nil)
}

// UpdateItemType PUT /itemtypes/{upc}.
func (c *InventoryClient) UpdateItemType(ctx context.Context, upc int64, t model.ItemType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	return c.do(ctx, "update item type", http.MethodPut, upcPath("/itemtypes/", upc), t, nil)
}

// DeleteItemType DELETE /itemtypes/{upc}.
func (c *InventoryClient) DeleteItemType(ctx context.Context, upc int64) error {
	return c.do(ctx, "delete item type", http.MethodDelete, upcPath("/itemtypes/", upc), nil, nil)
}

// ListItems GET /items.
func (c *InventoryClient) ListItems(ctx context.Context) ([]model.Item, error) {
	return c.listItems(ctx, "list items", "/items")
}

// ListItemsByType GET /items/type/{upc}.
func (c *InventoryClient) ListItemsByType(ctx context.Context, upc int64) ([]model.Item, error) {
	return c.listItems(ctx, "list items by type", upcPath("/items/type/", upc))
}

// ListItemsByOrder GET /items/order/{orderNumber}. Номер заказа кодируется в пути.
func (c *InventoryClient) ListItemsByOrder(ctx context.Context, orderNumber string) ([]model.Item, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return nil, errs.Validation("order number is required")
	}
	return c.listItems(ctx, "list items by order", "/items/order/"+url.PathEscape(orderNumber))
}

// GetItem GET /items/id/{id}.
func (c *InventoryClient) GetItem(ctx context.Context, id int64) (model.Item, error) {
	return c.getItem(ctx, "get item", "/items/id/"+strconv.FormatInt(id, 10))
}

// GetItemByQR GET /items/qr/{qr}. Текст QR кодируется в пути.
func (c *InventoryClient) GetItemByQR(ctx context.Context, qr string) (model.Item, error) {
	if qr == "" {
		return model.Item{}, errs.Validation("qr code is required")
	}
	return c.getItem(ctx, "get item by qr", "/items/qr/"+url.PathEscape(qr))
}

// CreateItems POST /items. Отправляются неидентифицированные проекции; если сервер
// вернул другое число id, вызов считается неуспешным.
func (c *InventoryClient) CreateItems(ctx context.Context, items []model.Item) ([]int64, error) {
	if len(items) == 0 {
		return nil, errs.Validation("at least one item is required")
	}
	payload := make([]model.Item, 0, len(items))
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		payload = append(payload, it.Unidentified())
	}

	var ids []int64
	if err := c.do(ctx, "create items", http.MethodPost, "/items", payload, &ids); err != nil {
		return nil, err
	}
	if len(ids) != len(items) {
		c.log.Errorw("create items: id count mismatch", "sent", len(items), "received", len(ids))
		return nil, fmt.Errorf("create items: %w: got %d ids for %d items", errs.ErrDecode, len(ids), len(items))
	}
	return ids, nil
}

// UpdateItem PUT /items/id/{id}, тело — неидентифицированный документ целиком.
func (c *InventoryClient) UpdateItem(ctx context.Context, id int64, it model.Item) error {
	if err := it.Validate(); err != nil {
		return err
	}
	return c.do(ctx, "update item", http.MethodPut, "/items/id/"+strconv.FormatInt(id, 10), it.Unidentified(), nil)
}

// DeleteItem DELETE /items/id/{id}.
func (c *InventoryClient) DeleteItem(ctx context.Context, id int64) error {
	return c.do(ctx, "delete item", http.MethodDelete, "/items/id/"+strconv.FormatInt(id, 10), nil, nil)
}

// CheckIn — приёмка заказанного экземпляра по отсканированному QR-коду.
// Экземпляр должен быть в статусе Ordered; qrCode и статус InStock уходят одним PUT
// полного документа, затем экземпляр перечитывается с сервера.
func (c *InventoryClient) CheckIn(ctx context.Context, id int64, qr string) (model.Item, error) {
	qr = strings.TrimSpace(qr)
	if qr == "" {
		return model.Item{}, errs.Validation("qr code is required")
	}
	it, err := c.GetItem(ctx, id)
	if err != nil {
		return model.Item{}, err
	}
	if it.Status != model.StatusOrdered {
		return model.Item{}, errs.Validation("item %d is %s, only ordered items can be checked in", id, it.Status)
	}
	it.QRCode = &qr
	it.Status = model.StatusInStock
	if err := c.UpdateItem(ctx, id, it); err != nil {
		return model.Item{}, err
	}
	return c.GetItem(ctx, id)
}
