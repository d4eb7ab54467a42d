package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"bazaar-be/internal/logger"
)

func newTestOrderRepo(t *testing.T) (*orderRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &orderRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateOrder_Success(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(int64(2), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(11))

	orderID, err := repo.CreateOrder(ctx, 2, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orderID != 11 {
		t.Errorf("expected order id 11, got %d", orderID)
	}
}

func TestCreateOrder_SellerHasNoCatalog(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	ctx := context.Background()

	// The catalog subselect yields NULL and the NOT NULL constraint fires.
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(int64(2), int64(7)).
		WillReturnError(pgError(pgerrcode.NotNullViolation))

	_, err := repo.CreateOrder(ctx, 2, 7)
	if !errors.Is(err, ErrCatalogNotFound) {
		t.Fatalf("expected ErrCatalogNotFound, got %v", err)
	}
}

func TestCreateOrder_DriverError(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(int64(2), int64(7)).
		WillReturnError(errors.New("db is down"))

	_, err := repo.CreateOrder(ctx, 2, 7)
	if !errors.Is(err, ErrOrderNotCreated) {
		t.Fatalf("expected ErrOrderNotCreated, got %v", err)
	}
}

func TestOrdersBySeller_GroupsRowsByOrder(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"order_id", "user_id", "buyer_name", "product_name", "product_price", "created_at"}).
		AddRow(1, 2, "bob", "carved spoon", 12.50, now).
		AddRow(1, 2, "bob", "oak bowl", 34.00, now).
		AddRow(2, 5, "carol", "carved spoon", 12.50, now)

	mock.ExpectQuery("SELECT oi.order_id").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	orders, err := repo.OrdersBySeller(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if len(orders[0].Products) != 2 {
		t.Errorf("expected 2 products in first order, got %d", len(orders[0].Products))
	}
	if orders[0].BuyerName != "bob" || orders[1].BuyerName != "carol" {
		t.Errorf("unexpected buyers: %s, %s", orders[0].BuyerName, orders[1].BuyerName)
	}
	if orders[1].Products[0].Price != 12.50 {
		t.Errorf("expected price 12.50, got %v", orders[1].Products[0].Price)
	}
}

func TestOrdersBySeller_NoOrders(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"order_id", "user_id", "buyer_name", "product_name", "product_price", "created_at"})

	mock.ExpectQuery("SELECT oi.order_id").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	orders, err := repo.OrdersBySeller(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("expected no orders, got %d", len(orders))
	}
}

func TestOrdersBySeller_QueryError(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT oi.order_id").
		WithArgs(int64(7)).
		WillReturnError(errors.New("db is down"))

	_, err := repo.OrdersBySeller(ctx, 7)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
