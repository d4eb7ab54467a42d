package store

import (
	"github.com/Masterminds/squirrel"

	"bazaar-be/models"
)

const (
	createUser = `INSERT INTO users (user_name, user_password, user_type)
    VALUES ($1, $2, $3)
    RETURNING user_id, created_at;`

	findUserByName = `SELECT user_id, user_name, user_password, user_type, created_at
    FROM users
    WHERE user_name = $1;`

	getAllUsers = `SELECT user_id, user_name, user_type
    FROM users
    ORDER BY user_id;`

	getSellers = `SELECT user_id, user_name
    FROM users
    WHERE user_type = 'seller'
    ORDER BY user_id;`

	createCatalog = `INSERT INTO catalogs (user_id)
    VALUES ($1)
    RETURNING catalog_id;`

	// The catalog id is resolved from the seller id inside the statement so
	// order placement stays a single atomic insert.
	createOrder = `INSERT INTO orders (user_id, catalog_id)
    VALUES ($1, (SELECT catalog_id FROM catalogs WHERE user_id = $2))
    RETURNING order_id;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildInsertProductsQuery assembles the multi-row product insert for a
// freshly created catalog. Every product name and price is a bound
// parameter; no value is ever interpolated into the statement text.
func buildInsertProductsQuery(catalogID int64, products []models.Product) (string, []any, error) {
	builder := psql.
		Insert("products").
		Columns("catalog_id", "product_name", "product_price")

	for _, product := range products {
		builder = builder.Values(catalogID, product.Name, product.Price)
	}

	return builder.ToSql()
}

// buildSellerCatalogQuery assembles the buyer-facing catalog lookup: the
// seller row joined (left) with the catalog and its products, so a seller
// without a catalog still produces one row with NULL product columns.
func buildSellerCatalogQuery(sellerID int64) (string, []any, error) {
	return psql.
		Select(
			"ui.user_id AS seller_id",
			"ui.user_name AS seller_name",
			"pi.product_id",
			"pi.product_name",
			"pi.product_price",
		).
		From("users ui").
		LeftJoin("catalogs ci ON ci.user_id = ui.user_id").
		LeftJoin("products pi ON pi.catalog_id = ci.catalog_id").
		Where(squirrel.Eq{
			"ui.user_id":   sellerID,
			"ui.user_type": models.RoleSeller,
		}).
		OrderBy("pi.product_id").
		ToSql()
}

// buildOrdersBySellerQuery assembles the seller-facing orders report: every
// order against the seller's catalog joined with the buyer identity and the
// catalog's products. Rows arrive ordered by order id so they can be grouped
// in a single pass.
func buildOrdersBySellerQuery(sellerID int64) (string, []any, error) {
	return psql.
		Select(
			"oi.order_id",
			"bi.user_id",
			"bi.user_name AS buyer_name",
			"pi.product_name",
			"pi.product_price",
			"oi.created_at",
		).
		From("orders oi").
		Join("catalogs ci ON ci.catalog_id = oi.catalog_id").
		Join("users bi ON bi.user_id = oi.user_id").
		Join("products pi ON pi.catalog_id = ci.catalog_id").
		Where(squirrel.Eq{"ci.user_id": sellerID}).
		OrderBy("oi.order_id", "pi.product_id").
		ToSql()
}
