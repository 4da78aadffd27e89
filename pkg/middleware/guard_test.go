package middleware

import (
	"testing"

	"travel-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestRoleAllowed(t *testing.T) {
	tests := []struct {
		path    string
		role    entity.UserRole
		allowed bool
	}{
		{"/api/admin/tours", entity.RoleAdmin, true},
		{"/api/admin/tours", entity.RoleManager, false},
		{"/api/admin/tours", entity.RoleClient, false},

		{"/api/manager/flights", entity.RoleManager, true},
		{"/api/manager/flights", entity.RoleAdmin, true},
		{"/api/manager/flights", entity.RoleClient, false},

		{"/api/client/bookings", entity.RoleClient, true},
		{"/api/client/bookings", entity.RoleManager, false},
		{"/api/client/bookings", entity.RoleAdmin, false},

		// /api/support admits any authenticated role.
		{"/api/support/messages", entity.RoleClient, true},
		{"/api/support/messages", entity.RoleManager, true},
		{"/api/support/messages", entity.RoleAdmin, true},

		// Unguarded paths are open.
		{"/api/tours", entity.RoleClient, true},
		{"/health", entity.RoleClient, true},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.allowed, RoleAllowed(tc.path, tc.role),
			"path=%s role=%s", tc.path, tc.role)
	}
}

func TestRolesForPrefixMatch(t *testing.T) {
	roles, guarded := RolesFor("/api/admin/managers")
	assert.True(t, guarded)
	assert.Equal(t, []entity.UserRole{entity.RoleAdmin}, roles)

	_, guarded = RolesFor("/api/tours")
	assert.False(t, guarded)
}
