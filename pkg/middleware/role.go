package middleware

import (
	"net/http"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/apiErrors"
)

// RoleMiddleware only lets through callers whose role is in allowedRoles.
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warn("unauthenticated access attempt")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
				return
			}

			if !slices.Contains(allowedRoles, claims.RoleID) {
				logrus.Warnf("access denied for subject=%s role=%d", claims.Subject, claims.RoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "you are not allowed to access this resource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleAdmin})
}

func AdminOrSupervisor() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleAdmin, domain.RoleSupervisor})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleAdmin, domain.RoleSupervisor, domain.RoleViewer})
}
