package service

import (
	"context"
	"fmt"

	"bazaar-be/internal/logger"
	"bazaar-be/internal/store"
	"bazaar-be/models"
)

// catalogService is the concrete implementation of CatalogService.
type catalogService struct {
	catalogRepository store.CatalogRepository
	userRepository    store.UserRepository
	logger            *logger.Logger
}

// NewCatalogService constructs a CatalogService over the catalog and user
// repositories. The user repository backs the seller listing.
func NewCatalogService(catalogRepository store.CatalogRepository, userRepository store.UserRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
		userRepository:    userRepository,
		logger:            logger,
	}
}

// CreateCatalog creates the seller's catalog with its initial products.
//
// The product list may be empty: the catalog row commits on its own. When
// products are supplied, the repository guarantees that the catalog row and
// every product row are committed atomically or not at all.
//
// Returns the new catalog id or:
//   - ErrInvalidDataProvided if any product has an empty name or a
//     non-positive price.
//   - A wrapped storage error otherwise (see store.ErrCatalogAlreadyExists,
//     store.ErrSellerNotFound).
func (c *catalogService) CreateCatalog(ctx context.Context, sellerID int64, products []models.Product) (int64, error) {
	log := logger.FromContext(ctx)

	for _, product := range products {
		if product.Name == "" || product.Price <= 0 {
			log.Error().
				Int64("seller_id", sellerID).
				Str("product_name", product.Name).
				Float64("product_price", product.Price).
				Msg("invalid product provided for catalog")
			return 0, ErrInvalidDataProvided
		}
	}

	catalogID, err := c.catalogRepository.CreateCatalog(ctx, sellerID, products)
	if err != nil {
		log.Err(err).Int64("seller_id", sellerID).Msg("catalog creation ended with error")
		return 0, fmt.Errorf("catalog creation ended with error: %w", err)
	}

	return catalogID, nil
}

// GetSellers lists every account carrying the seller role.
func (c *catalogService) GetSellers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	sellers, err := c.userRepository.GetSellers(ctx)
	if err != nil {
		log.Err(err).Msg("seller listing failed")
		return nil, fmt.Errorf("seller listing failed: %w", err)
	}

	return sellers, nil
}

// SellerCatalog returns the buyer-facing view of one seller's listing.
func (c *catalogService) SellerCatalog(ctx context.Context, sellerID int64) (models.SellerCatalog, error) {
	log := logger.FromContext(ctx)

	if sellerID <= 0 {
		log.Error().Int64("seller_id", sellerID).Msg("invalid seller id provided")
		return models.SellerCatalog{}, ErrInvalidDataProvided
	}

	catalog, err := c.catalogRepository.SellerCatalog(ctx, sellerID)
	if err != nil {
		log.Err(err).Int64("seller_id", sellerID).Msg("catalog lookup ended with error")
		return models.SellerCatalog{}, fmt.Errorf("catalog lookup ended with error: %w", err)
	}

	return catalog, nil
}
