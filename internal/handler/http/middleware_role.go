package http

import (
	"net/http"

	"bazaar-be/internal/logger"
	"bazaar-be/internal/utils"
)

// requireRole enforces role-based access control on a route group.
//
// It must run after the auth middleware, which places the verified role in
// the request context. A valid token carrying the wrong role yields 403, so
// a buyer token is rejected on seller endpoints and vice versa.
func (h *Handler) requireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			userRole, ok := utils.GetRoleFromContext(r.Context())
			if !ok || userRole != role {
				log.Warn().
					Str("required_role", role).
					Str("user_role", userRole).
					Msg("access denied for this role")
				writeFailure(w, ErrForbiddenForRole.Error(), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
