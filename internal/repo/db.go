package repo

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"InventoryManagement/internal/model"
)

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = gorm.ErrRecordNotFound
	// ErrDuplicate — запись с таким ключом уже есть.
	ErrDuplicate = errors.New("duplicate key")
	// ErrInUse — на тип товара ссылаются экземпляры.
	ErrInUse = errors.New("item type is in use")
	// ErrUnknownType — экземпляр ссылается на несуществующий тип товара.
	ErrUnknownType = errors.New("unknown item type")
)

// InitDB открывает БД по DSN и выполняет миграции. DSN вида postgres://... открывается
// драйвером postgres, всё остальное считается DSN SQLite (modernc, без cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	var (
		db  *gorm.DB
		err error
	)
	if isPostgres(dsn) {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		db, err = gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if !isPostgres(dsn) {
		// SQLite допускает одного писателя
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate создаёт или обновляет таблицы.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &ItemTypeRecord{}, &ItemRecord{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
