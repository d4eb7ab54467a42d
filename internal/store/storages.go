package store

import (
	"context"
	"fmt"

	"bazaar-be/internal/config"
	"bazaar-be/internal/logger"
)

// Storages bundles every repository behind its interface so the service layer
// depends on behaviour, not on the SQL implementations.
type Storages struct {
	UserRepository    UserRepository
	CatalogRepository CatalogRepository
	OrderRepository   OrderRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending schema migrations and
// wires up all repositories over the shared connection pool.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		CatalogRepository: NewCatalogRepository(db, log),
		OrderRepository:   NewOrderRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
