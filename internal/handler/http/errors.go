package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry a bearer token value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrForbiddenForRole is returned when an authenticated user's role does
	// not grant access to the requested endpoint.
	ErrForbiddenForRole = errors.New("access denied for this role")
)
