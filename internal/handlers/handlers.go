package handlers

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"InventoryManagement/internal/config"
	"InventoryManagement/internal/middleware"
	"InventoryManagement/internal/service"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	inventoryService *service.InventoryService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	itemTypeHandler := NewItemTypeHandler(inventoryService, logger)
	itemHandler := NewItemHandler(inventoryService, logger)

	// Session routes
	r.Post("/authenticate", userHandler.Authenticate)
	r.Post("/register", userHandler.Register)
	r.Get("/checkauth", userHandler.CheckAuth)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/itemtypes", itemTypeHandler.List)
		r.Post("/itemtypes", itemTypeHandler.Create)
		r.Get("/itemtypes/{upc}", itemTypeHandler.Get)
		r.Put("/itemtypes/{upc}", itemTypeHandler.Update)
		r.Delete("/itemtypes/{upc}", itemTypeHandler.Delete)

		r.Get("/items", itemHandler.List)
		r.Post("/items", itemHandler.Create)
		r.Get("/items/type/{upc}", itemHandler.ListByType)
		r.Get("/items/order/{orderNumber}", itemHandler.ListByOrder)
		r.Get("/items/qr/{qr}", itemHandler.GetByQR)
		r.Get("/items/id/{id}", itemHandler.Get)
		r.Put("/items/id/{id}", itemHandler.Update)
		r.Delete("/items/id/{id}", itemHandler.Delete)
	})

	return &Handler{Router: r}
}
