package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidRoleProvided = errors.New("invalid role provided")

	// ErrInvalidCredentials covers both an unknown user name and a wrong
	// password. Login failures are indistinguishable on purpose so the
	// endpoint cannot be used to probe which names are registered.
	ErrInvalidCredentials = errors.New("invalid user name or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
