package store

import (
	"context"
	"fmt"

	"bazaar-be/internal/logger"
	"bazaar-be/models"
)

// orderRepository is the PostgreSQL-backed implementation of
// [OrderRepository].
type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrderRepository constructs an [OrderRepository] backed by the provided
// database connection and logger.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

// CreateOrder records an order by the buyer against the seller's catalog.
//
// The catalog id is resolved by a subselect inside the insert itself, so the
// whole operation is a single atomic statement. When the seller has no
// catalog the subselect yields NULL and the NOT NULL constraint on
// orders.catalog_id rejects the row, which surfaces as [ErrCatalogNotFound].
func (r *orderRepository) CreateOrder(ctx context.Context, buyerID, sellerID int64) (int64, error) {
	log := logger.FromContext(ctx)

	var orderID int64
	row := r.db.QueryRowContext(ctx, createOrder, buyerID, sellerID)

	if err := row.Scan(&orderID); err != nil {
		if ClassifyConstraintError(err) == ReferenceConstraint {
			log.Warn().
				Str("func", "orderRepository.CreateOrder").
				Int64("buyer_id", buyerID).
				Int64("seller_id", sellerID).
				Msg("seller has no catalog")
			return 0, ErrCatalogNotFound
		}

		log.Err(err).
			Str("func", "orderRepository.CreateOrder").
			Int64("buyer_id", buyerID).
			Int64("seller_id", sellerID).
			Msg("failed to insert order")
		return 0, fmt.Errorf("%w: %w", ErrOrderNotCreated, err)
	}

	log.Info().
		Str("func", "orderRepository.CreateOrder").
		Int64("buyer_id", buyerID).
		Int64("seller_id", sellerID).
		Int64("order_id", orderID).
		Msg("order created")

	return orderID, nil
}

// OrdersBySeller returns every order placed against the seller's catalog.
//
// The query joins each order with the buyer identity and the catalog's
// products and arrives ordered by order id, so consecutive rows belonging to
// the same order are folded into one [models.SellerOrder] in a single pass.
// A seller with no orders gets an empty slice, not an error.
func (r *orderRepository) OrdersBySeller(ctx context.Context, sellerID int64) ([]models.SellerOrder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildOrdersBySellerQuery(sellerID)
	if err != nil {
		log.Err(err).
			Str("func", "orderRepository.OrdersBySeller").
			Int64("seller_id", sellerID).
			Msg("failed to build orders query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "orderRepository.OrdersBySeller").
			Int64("seller_id", sellerID).
			Msg("failed to execute orders query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	orders := make([]models.SellerOrder, 0, 16)

	for rows.Next() {
		var order models.SellerOrder
		var product models.Product

		scanErr := rows.Scan(&order.OrderID, &order.BuyerID, &order.BuyerName, &product.Name, &product.Price, &order.OrderTime)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "orderRepository.OrdersBySeller").
				Int64("seller_id", sellerID).
				Msg("failed to scan order row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if last := len(orders) - 1; last >= 0 && orders[last].OrderID == order.OrderID {
			orders[last].Products = append(orders[last].Products, product)
			continue
		}

		order.Products = []models.Product{product}
		orders = append(orders, order)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "orderRepository.OrdersBySeller").
			Int64("seller_id", sellerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return orders, nil
}
