package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar-be/internal/store"
	"bazaar-be/internal/utils"
	"bazaar-be/models"
)

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// withIdentity places an authenticated identity into the request context the
// same way the auth middleware does.
func withIdentity(req *http.Request, userID int64, role string) *http.Request {
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	ctx = context.WithValue(ctx, utils.RoleCtxKey, role)
	return req.WithContext(ctx)
}

func TestListOfSellers_Success(t *testing.T) {
	catalogs := &mockCatalogService{
		getSellersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{{UserID: 7, Name: "alice"}}, nil
		},
	}
	h := newTestHandler(t, nil, catalogs, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/buyer/list-of-sellers", nil)
	rec := httptest.NewRecorder()

	h.listOfSellers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SellersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Sellers, 1)
	assert.Equal(t, "alice", resp.Sellers[0].Name)
}

func TestSellerCatalog_Handler_Success(t *testing.T) {
	catalogs := &mockCatalogService{
		sellerCatalogFn: func(_ context.Context, sellerID int64) (models.SellerCatalog, error) {
			return models.SellerCatalog{
				SellerID:   sellerID,
				SellerName: "alice",
				Count:      1,
				Products:   []models.Product{{ProductID: 1, Name: "oak bowl", Price: 34}},
			}, nil
		},
	}
	h := newTestHandler(t, nil, catalogs, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/buyer/seller-catalog/7", nil)
	req = withURLParam(req, "sellerID", "7")
	rec := httptest.NewRecorder()

	h.sellerCatalog(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SellerCatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.Data.SellerID)
	assert.Equal(t, 1, resp.Data.Count)
}

func TestSellerCatalog_Handler_BadID(t *testing.T) {
	h := newTestHandler(t, nil, &mockCatalogService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/buyer/seller-catalog/abc", nil)
	req = withURLParam(req, "sellerID", "abc")
	rec := httptest.NewRecorder()

	h.sellerCatalog(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSellerCatalog_Handler_NotFound(t *testing.T) {
	catalogs := &mockCatalogService{
		sellerCatalogFn: func(_ context.Context, _ int64) (models.SellerCatalog, error) {
			return models.SellerCatalog{}, store.ErrSellerNotFound
		},
	}
	h := newTestHandler(t, nil, catalogs, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/buyer/seller-catalog/999", nil)
	req = withURLParam(req, "sellerID", "999")
	rec := httptest.NewRecorder()

	h.sellerCatalog(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrder_Handler_Success(t *testing.T) {
	orders := &mockOrderService{
		placeOrderFn: func(_ context.Context, buyerID, sellerID int64) (int64, error) {
			assert.Equal(t, int64(2), buyerID)
			assert.Equal(t, int64(7), sellerID)
			return 11, nil
		},
	}
	h := newTestHandler(t, nil, nil, orders)

	req := httptest.NewRequest(http.MethodPost, "/api/buyer/create-order/7", nil)
	req = withURLParam(req, "sellerID", "7")
	req = withIdentity(req, 2, models.RoleBuyer)
	rec := httptest.NewRecorder()

	h.createOrder(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CreateOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(11), resp.OrderID)
}

func TestCreateOrder_Handler_NoIdentity(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockOrderService{})

	req := httptest.NewRequest(http.MethodPost, "/api/buyer/create-order/7", nil)
	req = withURLParam(req, "sellerID", "7")
	rec := httptest.NewRecorder()

	h.createOrder(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateOrder_Handler_NoCatalog(t *testing.T) {
	orders := &mockOrderService{
		placeOrderFn: func(_ context.Context, _, _ int64) (int64, error) {
			return 0, store.ErrCatalogNotFound
		},
	}
	h := newTestHandler(t, nil, nil, orders)

	req := httptest.NewRequest(http.MethodPost, "/api/buyer/create-order/7", nil)
	req = withURLParam(req, "sellerID", "7")
	req = withIdentity(req, 2, models.RoleBuyer)
	rec := httptest.NewRecorder()

	h.createOrder(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
