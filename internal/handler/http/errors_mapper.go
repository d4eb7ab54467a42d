package http

import (
	"errors"
	"net/http"

	"bazaar-be/internal/service"
	"bazaar-be/internal/store"
)

// errorStatusMap translates the error taxonomy of the lower layers into HTTP
// status codes. Raw store errors never reach the client as text; only the
// status and a short message do.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidRoleProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusForbidden,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrUserAlreadyExists:    http.StatusConflict,
	store.ErrUserNotFound:         http.StatusNotFound,
	store.ErrCatalogAlreadyExists: http.StatusConflict,
	store.ErrSellerNotFound:       http.StatusNotFound,
	store.ErrCatalogNotFound:      http.StatusNotFound,
	store.ErrProductsNotSaved:     http.StatusInternalServerError,
	store.ErrOrderNotCreated:      http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the client-facing message for a failed request.
// Internal errors are masked behind the generic status text.
func messageFromError(err error, status int) string {
	if status == http.StatusInternalServerError {
		return http.StatusText(http.StatusInternalServerError)
	}

	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	return http.StatusText(status)
}
