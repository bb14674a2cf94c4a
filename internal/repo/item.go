package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"InventoryManagement/internal/model"
)

// ItemRepository — доступ к экземплярам товаров.
type ItemRepository interface {
	List(ctx context.Context) ([]model.Item, error)
	ListByType(ctx context.Context, upc int64) ([]model.Item, error)
	// ListByOrder ищет по любому из двух номеров заказа.
	ListByOrder(ctx context.Context, orderNumber string) ([]model.Item, error)
	Get(ctx context.Context, id int64) (*model.Item, error)
	GetByQR(ctx context.Context, qr string) (*model.Item, error)
	// CreateBatch вставляет все экземпляры в одной транзакции и возвращает id в порядке входа.
	CreateBatch(ctx context.Context, items []model.Item) ([]int64, error)
	// Update заменяет документ целиком.
	Update(ctx context.Context, id int64, it model.Item) error
	Delete(ctx context.Context, id int64) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) find(ctx context.Context, query any, args ...any) ([]model.Item, error) {
	var recs []ItemRecord
	if err := r.db.WithContext(ctx).Where(query, args...).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	return itemsToModel(recs), nil
}

func (r *itemRepo) first(ctx context.Context, query any, args ...any) (*model.Item, error) {
	var rec ItemRecord
	err := r.db.WithContext(ctx).Where(query, args...).Order("id").First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	it := rec.toModel()
	return &it, nil
}

func (r *itemRepo) List(ctx context.Context) ([]model.Item, error) {
	var recs []ItemRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	return itemsToModel(recs), nil
}

func (r *itemRepo) ListByType(ctx context.Context, upc int64) ([]model.Item, error) {
	return r.find(ctx, "item_type_upc = ?", upc)
}

func (r *itemRepo) ListByOrder(ctx context.Context, orderNumber string) ([]model.Item, error) {
	return r.find(ctx, "order_number_to_seller = ? OR order_number_to_buyer = ?", orderNumber, orderNumber)
}

func (r *itemRepo) Get(ctx context.Context, id int64) (*model.Item, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *itemRepo) GetByQR(ctx context.Context, qr string) (*model.Item, error) {
	return r.first(ctx, "qr_code = ?", qr)
}

func requireType(tx *gorm.DB, upc int64) error {
	_, err := findItemType(tx, upc)
	if errors.Is(err, ErrNotFound) {
		return ErrUnknownType
	}
	return err
}

func (r *itemRepo) CreateBatch(ctx context.Context, items []model.Item) ([]int64, error) {
	ids := make([]int64, 0, len(items))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		checked := map[int64]bool{}
		for _, it := range items {
			if !checked[it.ItemTypeUPC] {
				if err := requireType(tx, it.ItemTypeUPC); err != nil {
					return err
				}
				checked[it.ItemTypeUPC] = true
			}
			rec := toItemRecord(it.Unidentified())
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
			ids = append(ids, rec.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *itemRepo) Update(ctx context.Context, id int64, it model.Item) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing ItemRecord
		err := tx.First(&existing, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := requireType(tx, it.ItemTypeUPC); err != nil {
			return err
		}
		rec := toItemRecord(it.WithID(id))
		rec.CreatedAt = existing.CreatedAt
		return tx.Save(&rec).Error
	})
}

func (r *itemRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&ItemRecord{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
