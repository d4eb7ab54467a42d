package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"bazaar-be/internal/config"
	"bazaar-be/internal/logger"
	"bazaar-be/models"
)

type httpServerAdapter struct {
	client *resty.Client

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying client with the resolved
// base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

func (h *httpServerAdapter) authorized(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.token)
}

// Register implements [ServerAdapter]. It POSTs the account details to
// POST /api/auth/register and returns the server-assigned user id.
func (h *httpServerAdapter) Register(ctx context.Context, name, password, role string) (int64, error) {
	var result models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"userName":     name,
			"userPassword": password,
			"userType":     role,
		}).
		SetResult(&result).
		Post("/api/auth/register")
	if err != nil {
		return 0, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.UserID, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token from the response body
// is stored via SetToken and returned.
func (h *httpServerAdapter) Login(ctx context.Context, name, password string) (string, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"userName":     name,
			"userPassword": password,
		}).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(result.Token)
	return result.Token, nil
}

// Users implements [ServerAdapter]. It GETs /api/auth/users.
func (h *httpServerAdapter) Users(ctx context.Context) ([]models.User, error) {
	var result models.UsersResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/auth/users")
	if err != nil {
		return nil, fmt.Errorf("users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Users, nil
}

// Sellers implements [ServerAdapter]. It GETs /api/buyer/list-of-sellers
// with the stored buyer token.
func (h *httpServerAdapter) Sellers(ctx context.Context) ([]models.User, error) {
	var result models.SellersResponse

	resp, err := h.authorized(ctx).
		SetResult(&result).
		Get("/api/buyer/list-of-sellers")
	if err != nil {
		return nil, fmt.Errorf("sellers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Sellers, nil
}

// SellerCatalog implements [ServerAdapter]. It GETs
// /api/buyer/seller-catalog/{sellerID} with the stored buyer token.
func (h *httpServerAdapter) SellerCatalog(ctx context.Context, sellerID int64) (models.SellerCatalog, error) {
	var result models.SellerCatalogResponse

	resp, err := h.authorized(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/api/buyer/seller-catalog/%d", sellerID))
	if err != nil {
		return models.SellerCatalog{}, fmt.Errorf("seller catalog request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SellerCatalog{}, err
	}

	return result.Data, nil
}

// CreateOrder implements [ServerAdapter]. It POSTs to
// /api/buyer/create-order/{sellerID}; the buyer identity travels in the
// token, not the body.
func (h *httpServerAdapter) CreateOrder(ctx context.Context, sellerID int64) (int64, error) {
	var result models.CreateOrderResponse

	resp, err := h.authorized(ctx).
		SetResult(&result).
		Post(fmt.Sprintf("/api/buyer/create-order/%d", sellerID))
	if err != nil {
		return 0, fmt.Errorf("create order request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.OrderID, nil
}

// CreateCatalog implements [ServerAdapter]. It POSTs the product list to
// /api/seller/create-catalog with the stored seller token.
func (h *httpServerAdapter) CreateCatalog(ctx context.Context, products []models.Product) (int64, error) {
	var result models.CreateCatalogResponse

	resp, err := h.authorized(ctx).
		SetBody(map[string]any{"products": products}).
		SetResult(&result).
		Post("/api/seller/create-catalog")
	if err != nil {
		return 0, fmt.Errorf("create catalog request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.CatalogID, nil
}

// Orders implements [ServerAdapter]. It GETs /api/seller/orders with the
// stored seller token.
func (h *httpServerAdapter) Orders(ctx context.Context) ([]models.SellerOrder, error) {
	var result models.SellerOrdersResponse

	resp, err := h.authorized(ctx).
		SetResult(&result).
		Get("/api/seller/orders")
	if err != nil {
		return nil, fmt.Errorf("orders request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Orders, nil
}
