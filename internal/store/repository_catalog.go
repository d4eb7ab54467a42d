package store

import (
	"context"
	"database/sql"
	"fmt"

	"bazaar-be/internal/logger"
	"bazaar-be/models"
)

// catalogRepository is the PostgreSQL-backed implementation of
// [CatalogRepository]. Catalog creation is the one multi-statement write in
// the system and runs inside an explicit transaction; every other operation
// is a single statement.
type catalogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCatalogRepository constructs a [CatalogRepository] backed by the
// provided database connection and logger.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	logger.Debug().Msg("creating catalog repository")
	return &catalogRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCatalog creates the seller's catalog row and bulk-inserts all
// supplied products as one atomic unit.
//
// The transaction is rolled back automatically (via defer) unless the commit
// at the end is reached, so no partial catalog-without-products state can be
// committed when products were supplied and their insert failed. The pooled
// connection backing the transaction is released on every path.
//
// Error handling:
//   - unique violation on the seller id → [ErrCatalogAlreadyExists]
//   - foreign key violation on the seller id → [ErrSellerNotFound]
//   - product insert persisting fewer rows than supplied → [ErrProductsNotSaved]
func (r *catalogRepository) CreateCatalog(ctx context.Context, sellerID int64, products []models.Product) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.CreateCatalog").
			Int64("seller_id", sellerID).
			Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var catalogID int64
	if err = tx.QueryRowContext(ctx, createCatalog, sellerID).Scan(&catalogID); err != nil {
		switch ClassifyConstraintError(err) {
		case UniqueConstraint:
			log.Warn().
				Str("func", "catalogRepository.CreateCatalog").
				Int64("seller_id", sellerID).
				Msg("seller already has a catalog")
			return 0, ErrCatalogAlreadyExists
		case ReferenceConstraint:
			log.Warn().
				Str("func", "catalogRepository.CreateCatalog").
				Int64("seller_id", sellerID).
				Msg("seller does not exist")
			return 0, ErrSellerNotFound
		default:
			log.Err(err).
				Str("func", "catalogRepository.CreateCatalog").
				Int64("seller_id", sellerID).
				Msg("failed to insert catalog row")
			return 0, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if len(products) > 0 {
		if err = r.insertProducts(ctx, tx, catalogID, products); err != nil {
			return 0, err
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "catalogRepository.CreateCatalog").
			Int64("seller_id", sellerID).
			Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "catalogRepository.CreateCatalog").
		Int64("seller_id", sellerID).
		Int64("catalog_id", catalogID).
		Int("products_count", len(products)).
		Msg("catalog created")

	return catalogID, nil
}

// insertProducts performs the batched product insert inside the catalog
// transaction. All values are bound parameters produced by the squirrel
// builder. A shortfall in affected rows is treated as a failure so the
// caller's deferred rollback takes effect.
func (r *catalogRepository) insertProducts(ctx context.Context, tx *sql.Tx, catalogID int64, products []models.Product) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProductsQuery(catalogID, products)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.insertProducts").
			Int64("catalog_id", catalogID).
			Msg("failed to build bulk insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.insertProducts").
			Int64("catalog_id", catalogID).
			Int("products_count", len(products)).
			Msg("failed to execute bulk product insert")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.insertProducts").
			Int64("catalog_id", catalogID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected != int64(len(products)) {
		log.Error().
			Str("func", "catalogRepository.insertProducts").
			Int64("catalog_id", catalogID).
			Int64("affected", affected).
			Int("expected", len(products)).
			Msg("bulk insert persisted fewer products than supplied")
		return ErrProductsNotSaved
	}

	return nil
}

// SellerCatalog returns the buyer-facing view of one seller's listing.
//
// The left joins keep the seller row even when no catalog or products exist
// yet, so a catalog-less seller yields an empty product list rather than an
// error. Zero rows means the id does not belong to a seller →
// [ErrSellerNotFound].
func (r *catalogRepository) SellerCatalog(ctx context.Context, sellerID int64) (models.SellerCatalog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSellerCatalogQuery(sellerID)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.SellerCatalog").
			Int64("seller_id", sellerID).
			Msg("failed to build seller catalog query")
		return models.SellerCatalog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.SellerCatalog").
			Int64("seller_id", sellerID).
			Msg("failed to execute seller catalog query")
		return models.SellerCatalog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	catalog := models.SellerCatalog{Products: make([]models.Product, 0, 16)}
	found := false

	for rows.Next() {
		var productID sql.NullInt64
		var productName sql.NullString
		var productPrice sql.NullFloat64

		scanErr := rows.Scan(&catalog.SellerID, &catalog.SellerName, &productID, &productName, &productPrice)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "catalogRepository.SellerCatalog").
				Int64("seller_id", sellerID).
				Msg("failed to scan catalog row")
			return models.SellerCatalog{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		found = true

		if productID.Valid {
			catalog.Products = append(catalog.Products, models.Product{
				ProductID: productID.Int64,
				Name:      productName.String,
				Price:     productPrice.Float64,
			})
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "catalogRepository.SellerCatalog").
			Int64("seller_id", sellerID).
			Msg("error occurred during rows iteration")
		return models.SellerCatalog{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if !found {
		return models.SellerCatalog{}, ErrSellerNotFound
	}

	catalog.Count = len(catalog.Products)

	return catalog, nil
}
