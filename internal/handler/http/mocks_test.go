package http

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bazaar-be/internal/logger"
	"bazaar-be/internal/service"
	"bazaar-be/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, name, password string) (models.User, error)
	getAllUsersFn  func(ctx context.Context) ([]models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, name, password string) (models.User, error) {
	return m.loginFn(ctx, name, password)
}

func (m *mockAuthService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return m.getAllUsersFn(ctx)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock: service.CatalogService
// ─────────────────────────────────────────────

type mockCatalogService struct {
	createCatalogFn func(ctx context.Context, sellerID int64, products []models.Product) (int64, error)
	getSellersFn    func(ctx context.Context) ([]models.User, error)
	sellerCatalogFn func(ctx context.Context, sellerID int64) (models.SellerCatalog, error)
}

func (m *mockCatalogService) CreateCatalog(ctx context.Context, sellerID int64, products []models.Product) (int64, error) {
	return m.createCatalogFn(ctx, sellerID, products)
}

func (m *mockCatalogService) GetSellers(ctx context.Context) ([]models.User, error) {
	return m.getSellersFn(ctx)
}

func (m *mockCatalogService) SellerCatalog(ctx context.Context, sellerID int64) (models.SellerCatalog, error) {
	return m.sellerCatalogFn(ctx, sellerID)
}

// ─────────────────────────────────────────────
// Mock: service.OrderService
// ─────────────────────────────────────────────

type mockOrderService struct {
	placeOrderFn     func(ctx context.Context, buyerID, sellerID int64) (int64, error)
	ordersBySellerFn func(ctx context.Context, sellerID int64) ([]models.SellerOrder, error)
}

func (m *mockOrderService) PlaceOrder(ctx context.Context, buyerID, sellerID int64) (int64, error) {
	return m.placeOrderFn(ctx, buyerID, sellerID)
}

func (m *mockOrderService) OrdersBySeller(ctx context.Context, sellerID int64) ([]models.SellerOrder, error) {
	return m.ordersBySellerFn(ctx, sellerID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service mocks. Nil mocks are
// allowed for services a test never touches.
func newTestHandler(t *testing.T, auth service.AuthService, catalogs service.CatalogService, orders service.OrderService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:    auth,
		CatalogService: catalogs,
		OrderService:   orders,
	}
	return NewHandler(svcs, time.Second, logger.Nop())
}

// authedToken builds the parsed-token fixture the auth middleware would
// produce for the given identity.
func authedToken(userID int64, role string) models.Token {
	return models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: strconv.FormatInt(userID, 10),
		},
		Role:   role,
		UserID: userID,
	}
}
