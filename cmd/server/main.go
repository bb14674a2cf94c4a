package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"InventoryManagement/internal/config"
	"InventoryManagement/internal/handlers"
	"InventoryManagement/internal/middleware"
	"InventoryManagement/internal/repo"
	"InventoryManagement/internal/service"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userService := service.NewUserService(repo.NewUserRepository(gormDB))
	if cfg.AdminUser != "" {
		created, err := userService.EnsureUser(ctx, cfg.AdminUser, cfg.AdminPassword)
		if err != nil {
			sugar.Fatalw("failed to create initial user", "user", cfg.AdminUser, "error", err)
		}
		sugar.Infow("Initial user", "user", cfg.AdminUser, "created", created)
	}
	inventoryService := service.NewInventoryService(
		repo.NewItemTypeRepository(gormDB),
		repo.NewItemRepository(gormDB),
		sugar,
	)

	h := handlers.NewHandler(userService, inventoryService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
