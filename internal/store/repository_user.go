package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bazaar-be/internal/logger"
	"bazaar-be/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Password, user.Role)

	if err := row.Scan(&user.UserID, &user.CreatedAt); err != nil {
		if ClassifyConstraintError(err) == UniqueConstraint {
			log.Warn().Str("func", "*userRepository.CreateUser").Str("user_name", user.Name).Msg("user name already taken")
			return models.User{}, ErrUserAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByName retrieves a user record whose name matches the one provided.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByName(ctx context.Context, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByName, name)

	if err := row.Scan(&foundUser.UserID, &foundUser.Name, &foundUser.Password, &foundUser.Role, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByName").Msg("error scanning user row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// GetAllUsers lists every registered account. Password hashes are not
// selected by the underlying query.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return r.listUsers(ctx, getAllUsers, true)
}

// GetSellers lists every account carrying the seller role.
func (r *userRepository) GetSellers(ctx context.Context) ([]models.User, error) {
	return r.listUsers(ctx, getSellers, false)
}

func (r *userRepository) listUsers(ctx context.Context, query string, withRole bool) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.listUsers").Msg("error executing user list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)

	for rows.Next() {
		var user models.User

		var scanErr error
		if withRole {
			scanErr = rows.Scan(&user.UserID, &user.Name, &user.Role)
		} else {
			scanErr = rows.Scan(&user.UserID, &user.Name)
		}
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.listUsers").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*userRepository.listUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}
