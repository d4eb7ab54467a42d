package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bazaar-be/internal/config"
	"bazaar-be/internal/logger"
	"bazaar-be/internal/store"
	"bazaar-be/internal/utils"
	"bazaar-be/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the work factor applied when hashing passwords at
	// registration time.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that name and password are non-empty and that the role is one
// of the two known values, hashes the password with bcrypt, and delegates
// persistence to the UserRepository. The plain-text password never reaches
// the repository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if name or password is empty.
//   - ErrInvalidRoleProvided if the role is neither buyer nor seller.
//   - A wrapped storage error if the repository call fails (e.g. the name is
//     already taken, see store.ErrUserAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Name == "" || user.Password == "" {
		log.Error().Str("user_name", user.Name).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if !models.ValidRole(user.Role) {
		log.Error().Str("user_name", user.Name).Str("user_type", user.Role).Msg("invalid role provided")
		return models.User{}, ErrInvalidRoleProvided
	}

	hash, err := utils.HashPassword(user.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("user_name", user.Name).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.Password = hash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("user_name", user.Name).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by name and plain-text password.
//
// An unknown name and a wrong password both collapse into
// ErrInvalidCredentials; the bcrypt comparison runs in constant time with
// respect to the stored hash.
func (a *authService) Login(ctx context.Context, name, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if name == "" || password == "" {
		log.Error().Str("user_name", name).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("user_name", name).Msg("login attempt for unknown user")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("user_name", name).Msg("user search by name failed")
		return models.User{}, fmt.Errorf("user search by name failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.Password, password) {
		log.Warn().Int64("user_id", foundUser.UserID).Str("user_name", name).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// GetAllUsers lists every registered account. Password hashes are stripped at
// the repository level and never reach callers.
func (a *authService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := a.userRepository.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the user's role as a custom claim, and
// expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim and the role claim. Any validation failure (expired, wrong
// issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
