package service

import (
	"bazaar-be/internal/config"
	"bazaar-be/internal/logger"
	"bazaar-be/internal/store"
)

// Services bundles the business-logic layer behind its interfaces.
type Services struct {
	AuthService    AuthService
	CatalogService CatalogService
	OrderService   OrderService
}

// NewServices wires every service to its repositories and configuration.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		CatalogService: NewCatalogService(storages.CatalogRepository, storages.UserRepository, logger),
		OrderService:   NewOrderService(storages.OrderRepository, logger),
	}
}
