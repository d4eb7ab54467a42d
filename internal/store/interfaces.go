package store

import (
	"context"

	"bazaar-be/models"
)

// UserRepository persists and looks up marketplace accounts.
type UserRepository interface {
	// CreateUser inserts a new user record. The users table enforces name
	// uniqueness; a duplicate name yields ErrUserAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByName retrieves a user record by its unique name.
	// Returns ErrUserNotFound when no record matches.
	FindUserByName(ctx context.Context, name string) (models.User, error)

	// GetAllUsers lists every registered account (names and roles only;
	// password hashes never leave the repository through this method).
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// GetSellers lists every account with the seller role.
	GetSellers(ctx context.Context) ([]models.User, error)
}

// CatalogRepository persists seller catalogs and their products.
type CatalogRepository interface {
	// CreateCatalog creates the seller's catalog and bulk-inserts the given
	// products as one atomic unit. Either the catalog row and every product
	// row are committed together, or nothing is.
	CreateCatalog(ctx context.Context, sellerID int64, products []models.Product) (int64, error)

	// SellerCatalog returns the buyer-facing view of one seller's listing.
	// Returns ErrSellerNotFound when the id does not belong to a seller.
	SellerCatalog(ctx context.Context, sellerID int64) (models.SellerCatalog, error)
}

// OrderRepository persists buyer orders and produces the seller's order
// report.
type OrderRepository interface {
	// CreateOrder records an order by the buyer against the seller's
	// catalog, resolving the catalog id inside a single insert. Returns
	// ErrCatalogNotFound when the seller has no catalog.
	CreateOrder(ctx context.Context, buyerID, sellerID int64) (int64, error)

	// OrdersBySeller returns every order placed against the seller's
	// catalog, grouped by order with buyer identity and product details.
	OrdersBySeller(ctx context.Context, sellerID int64) ([]models.SellerOrder, error)
}
