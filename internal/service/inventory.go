package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"InventoryManagement/internal/errs"
	"InventoryManagement/internal/model"
	"InventoryManagement/internal/repo"
)

// InventoryService инкапсулирует бизнес-логику каталога: типы товаров и экземпляры.
// Переходы статусов не ограничиваются: любой статус можно записать обновлением.
type InventoryService struct {
	types  repo.ItemTypeRepository
	items  repo.ItemRepository
	logger *zap.SugaredLogger
}

func NewInventoryService(types repo.ItemTypeRepository, items repo.ItemRepository, logger *zap.SugaredLogger) *InventoryService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &InventoryService{types: types, items: items, logger: logger}
}

func (s *InventoryService) ListItemTypes(ctx context.Context) ([]model.ItemType, error) {
	return s.types.List(ctx)
}

func (s *InventoryService) GetItemType(ctx context.Context, upc int64) (*model.ItemType, error) {
	return s.types.Get(ctx, upc)
}

func (s *InventoryService) CreateItemType(ctx context.Context, t model.ItemType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := s.types.Create(ctx, t); err != nil {
		return err
	}
	s.logger.Infow("item type created", "upc", t.UPC, "name", t.Name)
	return nil
}

// UpdateItemType меняет имя и картинку. UPC в теле должен совпадать с ключом.
func (s *InventoryService) UpdateItemType(ctx context.Context, upc int64, t model.ItemType) error {
	if t.UPC != upc {
		return errs.Validation("upc %d in body does not match %d", t.UPC, upc)
	}
	if err := t.Validate(); err != nil {
		return err
	}
	return s.types.Update(ctx, upc, t)
}

func (s *InventoryService) DeleteItemType(ctx context.Context, upc int64) error {
	if err := s.types.Delete(ctx, upc); err != nil {
		return err
	}
	s.logger.Infow("item type deleted", "upc", upc)
	return nil
}

func (s *InventoryService) ListItems(ctx context.Context) ([]model.Item, error) {
	return s.items.List(ctx)
}

func (s *InventoryService) ListItemsByType(ctx context.Context, upc int64) ([]model.Item, error) {
	return s.items.ListByType(ctx, upc)
}

func (s *InventoryService) ListItemsByOrder(ctx context.Context, orderNumber string) ([]model.Item, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return nil, errs.Validation("order number is required")
	}
	return s.items.ListByOrder(ctx, orderNumber)
}

func (s *InventoryService) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	return s.items.Get(ctx, id)
}

func (s *InventoryService) GetItemByQR(ctx context.Context, qr string) (*model.Item, error) {
	if qr == "" {
		return nil, errs.Validation("qr code is required")
	}
	return s.items.GetByQR(ctx, qr)
}

// CreateItems создаёт экземпляры пакетом; либо все, либо ни одного.
func (s *InventoryService) CreateItems(ctx context.Context, items []model.Item) ([]int64, error) {
	if len(items) == 0 {
		return nil, errs.Validation("at least one item is required")
	}
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	ids, err := s.items.CreateBatch(ctx, items)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("items created", "count", len(ids))
	return ids, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, id int64, it model.Item) error {
	if err := it.Validate(); err != nil {
		return err
	}
	return s.items.Update(ctx, id, it)
}

func (s *InventoryService) DeleteItem(ctx context.Context, id int64) error {
	return s.items.Delete(ctx, id)
}
