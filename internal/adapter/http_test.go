package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar-be/internal/config"
	"bazaar-be/internal/logger"
	"bazaar-be/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		BaseURL:        ts.URL,
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return a
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain host", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "with scheme", raw: "https://market.example.com/", want: "https://market.example.com"},
		{name: "spaces trimmed", raw: "  http://localhost:8080  ", want: "http://localhost:8080"},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdapterLogin_StoresToken(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["userName"])

		writeJSON(w, http.StatusOK, models.LoginResponse{
			Response: models.Response{Success: true},
			Token:    "signed.jwt.token",
		})
	}))

	token, err := a.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", token)
	assert.Equal(t, "signed.jwt.token", a.Token())
}

func TestAdapterLogin_InvalidCredentials(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, models.Response{Success: false, Message: "invalid user name or password"})
	}))

	_, err := a.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid user name or password")
	assert.Empty(t, a.Token())
}

func TestAdapterRegister_ReturnsUserID(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)

		writeJSON(w, http.StatusCreated, models.RegisterResponse{
			Response: models.Response{Success: true},
			UserID:   42,
		})
	}))

	userID, err := a.Register(context.Background(), "alice", "s3cret", models.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestAdapterRegister_Conflict(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, models.Response{Success: false, Message: "user name already exists"})
	}))

	_, err := a.Register(context.Background(), "alice", "s3cret", models.RoleBuyer)
	require.ErrorIs(t, err, ErrConflict)
}

func TestAdapterSellers_SendsBearerToken(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/buyer/list-of-sellers", r.URL.Path)
		require.Equal(t, "Bearer buyer.jwt.token", r.Header.Get("Authorization"))

		writeJSON(w, http.StatusOK, models.SellersResponse{
			Response: models.Response{Success: true},
			Count:    1,
			Sellers:  []models.User{{UserID: 7, Name: "alice"}},
		})
	}))

	a.SetToken("buyer.jwt.token")

	sellers, err := a.Sellers(context.Background())
	require.NoError(t, err)
	require.Len(t, sellers, 1)
	assert.Equal(t, "alice", sellers[0].Name)
}

func TestAdapterSellerCatalog_NotFound(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, models.Response{Success: false, Message: "seller was not found"})
	}))

	a.SetToken("buyer.jwt.token")

	_, err := a.SellerCatalog(context.Background(), 999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAdapterCreateCatalog_Success(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/seller/create-catalog", r.URL.Path)

		var body struct {
			Products []models.Product `json:"products"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Products, 1)

		writeJSON(w, http.StatusCreated, models.CreateCatalogResponse{
			Response:  models.Response{Success: true},
			CatalogID: 3,
		})
	}))

	a.SetToken("seller.jwt.token")

	catalogID, err := a.CreateCatalog(context.Background(), []models.Product{{Name: "oak bowl", Price: 34}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), catalogID)
}

func TestAdapterCreateOrder_Forbidden(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, models.Response{Success: false, Message: "access denied for this role"})
	}))

	a.SetToken("seller.jwt.token")

	_, err := a.CreateOrder(context.Background(), 7)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestAdapterOrders_Success(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/seller/orders", r.URL.Path)

		writeJSON(w, http.StatusOK, models.SellerOrdersResponse{
			Response:    models.Response{Success: true},
			TotalOrders: 1,
			Orders: []models.SellerOrder{
				{OrderID: 1, BuyerID: 2, BuyerName: "bob", Products: []models.Product{{Name: "oak bowl", Price: 34}}},
			},
		})
	}))

	a.SetToken("seller.jwt.token")

	orders, err := a.Orders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "bob", orders[0].BuyerName)
}
