package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"InventoryManagement/internal/model"
)

// ItemTypeRepository — доступ к типам товаров. Ключ — UPC.
type ItemTypeRepository interface {
	List(ctx context.Context) ([]model.ItemType, error)
	Get(ctx context.Context, upc int64) (*model.ItemType, error)
	// Create возвращает ErrDuplicate, если UPC уже занят.
	Create(ctx context.Context, t model.ItemType) error
	// Update меняет имя и картинку; UPC не переназначается.
	Update(ctx context.Context, upc int64, t model.ItemType) error
	// Delete возвращает ErrInUse, если у типа есть экземпляры.
	Delete(ctx context.Context, upc int64) error
}

type itemTypeRepo struct {
	db *gorm.DB
}

// NewItemTypeRepository создаёт реализацию репозитория типов товаров.
func NewItemTypeRepository(db *gorm.DB) ItemTypeRepository {
	return &itemTypeRepo{db: db}
}

func (r *itemTypeRepo) List(ctx context.Context) ([]model.ItemType, error) {
	var recs []ItemTypeRecord
	if err := r.db.WithContext(ctx).Order("upc").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]model.ItemType, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toModel())
	}
	return out, nil
}

func (r *itemTypeRepo) Get(ctx context.Context, upc int64) (*model.ItemType, error) {
	rec, err := findItemType(r.db.WithContext(ctx), upc)
	if err != nil {
		return nil, err
	}
	t := rec.toModel()
	return &t, nil
}

func findItemType(tx *gorm.DB, upc int64) (*ItemTypeRecord, error) {
	var rec ItemTypeRecord
	err := tx.Where("upc = ?", upc).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *itemTypeRepo) Create(ctx context.Context, t model.ItemType) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := findItemType(tx, t.UPC)
		switch {
		case err == nil:
			return ErrDuplicate
		case !errors.Is(err, ErrNotFound):
			return err
		}
		rec := toItemTypeRecord(t)
		return tx.Create(&rec).Error
	})
}

func (r *itemTypeRepo) Update(ctx context.Context, upc int64, t model.ItemType) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := findItemType(tx, upc)
		if err != nil {
			return err
		}
		rec.Name = t.Name
		rec.ImageURL = t.ImageURL
		return tx.Save(rec).Error
	})
}

func (r *itemTypeRepo) Delete(ctx context.Context, upc int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := findItemType(tx, upc)
		if err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&ItemRecord{}).Where("item_type_upc = ?", upc).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrInUse
		}
		return tx.Delete(rec).Error
	})
}
