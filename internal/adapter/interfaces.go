// Package adapter provides the transport layer the terminal client uses to
// talk to the marketplace server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// application from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"bazaar-be/models"
)

// ServerAdapter defines transport-agnostic communication with the
// marketplace server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account with the given name, password and role
	// and returns the server-assigned user id.
	Register(ctx context.Context, name, password, role string) (int64, error)

	// Login authenticates with the server. On success it stores the returned
	// bearer token via SetToken and returns it.
	Login(ctx context.Context, name, password string) (string, error)

	// Users lists every registered account.
	Users(ctx context.Context) ([]models.User, error)

	// Sellers lists every seller account. Requires a buyer token.
	Sellers(ctx context.Context) ([]models.User, error)

	// SellerCatalog fetches one seller's catalog. Requires a buyer token.
	SellerCatalog(ctx context.Context, sellerID int64) (models.SellerCatalog, error)

	// CreateOrder places an order against the seller's catalog on behalf of
	// the authenticated buyer and returns the order id.
	CreateOrder(ctx context.Context, sellerID int64) (int64, error)

	// CreateCatalog creates the authenticated seller's catalog with its
	// initial products and returns the catalog id.
	CreateCatalog(ctx context.Context, products []models.Product) (int64, error)

	// Orders fetches every order placed against the authenticated seller's
	// catalog.
	Orders(ctx context.Context) ([]models.SellerOrder, error)
}
