package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"bazaar-be/internal/logger"
	"bazaar-be/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Name:     "alice",
		Password: "bcrypt-hash",
		Role:     models.RoleSeller,
	}

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"user_id", "created_at"}).
		AddRow(1, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Name, user.Password, user.Role).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Name != user.Name {
		t.Errorf("expected name %s, got %s", user.Name, created.Name)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Name: "alice", Password: "hash", Role: models.RoleBuyer}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Name: "alice", Password: "hash", Role: models.RoleBuyer}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByName_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"user_id", "user_name", "user_password", "user_type", "created_at"}).
		AddRow(1, "alice", "bcrypt-hash", models.RoleSeller, now)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("alice").
		WillReturnRows(rows)

	found, err := repo.FindUserByName(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != "alice" {
		t.Errorf("expected name alice, got %s", found.Name)
	}
	if found.Role != models.RoleSeller {
		t.Errorf("expected seller role, got %s", found.Role)
	}
}

func TestFindUserByName_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByName(ctx, "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetAllUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"user_id", "user_name", "user_type"}).
		AddRow(1, "alice", models.RoleSeller).
		AddRow(2, "bob", models.RoleBuyer)

	mock.ExpectQuery("SELECT user_id").
		WillReturnRows(rows)

	users, err := repo.GetAllUsers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Role != models.RoleSeller || users[1].Role != models.RoleBuyer {
		t.Errorf("unexpected roles: %s, %s", users[0].Role, users[1].Role)
	}
	for _, u := range users {
		if u.Password != "" {
			t.Errorf("password hash leaked for user %s", u.Name)
		}
	}
}

func TestGetSellers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"user_id", "user_name"}).
		AddRow(1, "alice")

	mock.ExpectQuery("SELECT user_id").
		WillReturnRows(rows)

	sellers, err := repo.GetSellers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sellers) != 1 {
		t.Fatalf("expected 1 seller, got %d", len(sellers))
	}
	if sellers[0].Name != "alice" {
		t.Errorf("expected seller alice, got %s", sellers[0].Name)
	}
}

func TestGetAllUsers_QueryError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WillReturnError(errors.New("db is down"))

	_, err := repo.GetAllUsers(ctx)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
