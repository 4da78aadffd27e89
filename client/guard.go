package client

import (
	"travel-booking/internal/data/entity"
	"travel-booking/pkg/middleware"
)

// CanAccess reports whether the role may call the path. It consults the same
// guard table the server enforces, so SDK consumers can steer users away
// from endpoints that would only 403.
func CanAccess(path string, role entity.UserRole) bool {
	return middleware.RoleAllowed(path, role)
}
