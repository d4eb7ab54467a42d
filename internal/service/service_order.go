package service

import (
	"context"
	"fmt"

	"bazaar-be/internal/logger"
	"bazaar-be/internal/store"
	"bazaar-be/models"
)

// orderService is the concrete implementation of OrderService.
type orderService struct {
	orderRepository store.OrderRepository
	logger          *logger.Logger
}

// NewOrderService constructs an OrderService over the order repository.
func NewOrderService(orderRepository store.OrderRepository, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		logger:          logger,
	}
}

// PlaceOrder records an order by the buyer against the seller's catalog.
//
// Returns the new order id or:
//   - ErrInvalidDataProvided if either id is non-positive.
//   - A wrapped storage error otherwise (see store.ErrCatalogNotFound when
//     the seller has no catalog yet).
func (o *orderService) PlaceOrder(ctx context.Context, buyerID, sellerID int64) (int64, error) {
	log := logger.FromContext(ctx)

	if buyerID <= 0 || sellerID <= 0 {
		log.Error().Int64("buyer_id", buyerID).Int64("seller_id", sellerID).Msg("invalid order identifiers provided")
		return 0, ErrInvalidDataProvided
	}

	orderID, err := o.orderRepository.CreateOrder(ctx, buyerID, sellerID)
	if err != nil {
		log.Err(err).Int64("buyer_id", buyerID).Int64("seller_id", sellerID).Msg("order placement ended with error")
		return 0, fmt.Errorf("order placement ended with error: %w", err)
	}

	return orderID, nil
}

// OrdersBySeller returns every order placed against the seller's catalog,
// grouped by order with buyer identity and product details.
func (o *orderService) OrdersBySeller(ctx context.Context, sellerID int64) ([]models.SellerOrder, error) {
	log := logger.FromContext(ctx)

	if sellerID <= 0 {
		log.Error().Int64("seller_id", sellerID).Msg("invalid seller id provided")
		return nil, ErrInvalidDataProvided
	}

	orders, err := o.orderRepository.OrdersBySeller(ctx, sellerID)
	if err != nil {
		log.Err(err).Int64("seller_id", sellerID).Msg("order listing ended with error")
		return nil, fmt.Errorf("order listing ended with error: %w", err)
	}

	return orders, nil
}
