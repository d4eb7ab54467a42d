package models

import "time"

// Catalog is the single product listing owned by one seller. The store
// enforces the one-catalog-per-seller invariant with a unique constraint on
// SellerID.
type Catalog struct {
	// CatalogID is the internal unique identifier of the catalog.
	CatalogID int64 `json:"catalog_id"`

	// SellerID references the owning seller's user id.
	SellerID int64 `json:"seller_id"`

	// CreatedAt is the timestamp when the catalog was created.
	CreatedAt time.Time `json:"-"`
}

// Product is a single sellable item inside a seller's catalog. Products are
// inserted in bulk at catalog-creation time and are immutable afterwards.
type Product struct {
	// ProductID is the internal unique identifier of the product.
	// Zero until the row is persisted.
	ProductID int64 `json:"product_id,omitempty"`

	// Name is the display name of the product.
	Name string `json:"name" validate:"required"`

	// Price is the product price in the marketplace currency.
	Price float64 `json:"price" validate:"required,gt=0"`
}

// SellerCatalog is the buyer-facing view of one seller's listing: the seller
// identity plus every product in their catalog.
type SellerCatalog struct {
	SellerID   int64     `json:"seller_id"`
	SellerName string    `json:"seller_name"`
	Count      int       `json:"count"`
	Products   []Product `json:"products"`
}

// TableName returns the name of the database table
// associated with the Catalog model.
func (c Catalog) TableName() string {
	return "catalogs"
}
