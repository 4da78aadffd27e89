package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/utils"
)

// Guard maps a path prefix to the roles allowed behind it. Empty Roles means
// any authenticated user.
type Guard struct {
	Prefix string
	Roles  []entity.UserRole
}

// guards is the single role-to-route table. The HTTP layer and the client
// SDK both consult it so the two layers cannot drift apart.
var guards = []Guard{
	{Prefix: "/api/admin", Roles: []entity.UserRole{entity.RoleAdmin}},
	{Prefix: "/api/manager", Roles: []entity.UserRole{entity.RoleManager, entity.RoleAdmin}},
	{Prefix: "/api/client", Roles: []entity.UserRole{entity.RoleClient}},
	{Prefix: "/api/support", Roles: nil},
}

// RolesFor returns the guard entry matching the path, if any.
func RolesFor(path string) ([]entity.UserRole, bool) {
	for _, g := range guards {
		if strings.HasPrefix(path, g.Prefix) {
			return g.Roles, true
		}
	}
	return nil, false
}

// RoleAllowed reports whether the role may access the path. Unguarded paths
// are open to everyone.
func RoleAllowed(path string, role entity.UserRole) bool {
	roles, guarded := RolesFor(path)
	if !guarded || len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// RouteGuard enforces the guard table for authenticated requests. Runs after
// Auth, which already rejected anonymous callers.
func RouteGuard(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !RoleAllowed(r.URL.Path, role) {
				logger.Warn("Role-mismatched access attempt",
					zap.String("path", r.URL.Path),
					zap.String("role", string(role)))
				utils.ResponseForbidden(w, "Access denied for your role")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
