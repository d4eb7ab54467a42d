package service

import (
	"context"

	"bazaar-be/models"
)

// AuthService handles account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, name, password string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CatalogService handles the seller's catalog and its buyer-facing views.
type CatalogService interface {
	CreateCatalog(ctx context.Context, sellerID int64, products []models.Product) (int64, error)
	GetSellers(ctx context.Context) ([]models.User, error)
	SellerCatalog(ctx context.Context, sellerID int64) (models.SellerCatalog, error)
}

// OrderService handles order placement and the seller's order report.
type OrderService interface {
	PlaceOrder(ctx context.Context, buyerID, sellerID int64) (int64, error)
	OrdersBySeller(ctx context.Context, sellerID int64) ([]models.SellerOrder, error)
}
