package models

import "time"

// Order records a buyer's purchase against a seller's catalog. Orders are
// immutable once created.
type Order struct {
	// OrderID is the internal unique identifier of the order.
	OrderID int64 `json:"order_id"`

	// BuyerID references the buyer who placed the order.
	BuyerID int64 `json:"buyer_id"`

	// CatalogID references the ordered catalog. It is resolved from the
	// seller id at creation time and must exist at that moment.
	CatalogID int64 `json:"catalog_id"`

	// CreatedAt is the timestamp when the order was placed.
	CreatedAt time.Time `json:"-"`
}

// SellerOrder is the seller-facing view of one order: the buyer identity,
// the products it covers, and the time it was placed. Rows coming back from
// the orders join are grouped into these by order id.
type SellerOrder struct {
	OrderID   int64     `json:"order_id"`
	BuyerID   int64     `json:"buyer_id"`
	BuyerName string    `json:"buyer_name"`
	Products  []Product `json:"products"`
	OrderTime time.Time `json:"order_time"`
}
