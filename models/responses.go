package models

// Response is the JSON envelope shared by every API endpoint. The HTTP
// status code remains the authoritative signal for machine clients; Message
// is a human-readable complement populated on failures and on write
// confirmations.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// RegisterResponse is returned by POST /api/auth/register.
type RegisterResponse struct {
	Response
	UserID int64 `json:"userId"`
}

// LoginResponse is returned by POST /api/auth/login.
type LoginResponse struct {
	Response
	Token string `json:"token"`
}

// UsersResponse is returned by GET /api/auth/users.
type UsersResponse struct {
	Response
	Count int    `json:"count"`
	Users []User `json:"users"`
}

// SellersResponse is returned by GET /api/buyer/list-of-sellers.
type SellersResponse struct {
	Response
	Count   int    `json:"count"`
	Sellers []User `json:"sellers"`
}

// SellerCatalogResponse is returned by GET /api/buyer/seller-catalog/{id}.
type SellerCatalogResponse struct {
	Response
	Data SellerCatalog `json:"data"`
}

// CreateCatalogResponse is returned by POST /api/seller/create-catalog.
type CreateCatalogResponse struct {
	Response
	CatalogID int64 `json:"catalogId"`
}

// CreateOrderResponse is returned by POST /api/buyer/create-order/{id}.
type CreateOrderResponse struct {
	Response
	OrderID int64 `json:"orderId"`
}

// SellerOrdersResponse is returned by GET /api/seller/orders with rows
// grouped by order.
type SellerOrdersResponse struct {
	Response
	TotalOrders int           `json:"totalOrders"`
	Orders      []SellerOrder `json:"orders"`
}
