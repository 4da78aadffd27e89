package entity

type UserRole string

const (
	RoleClient  UserRole = "CLIENT"
	RoleManager UserRole = "MANAGER"
	RoleAdmin   UserRole = "ADMIN"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusBlocked UserStatus = "BLOCKED"
)

type User struct {
	Base
	Email        string     `db:"email"`
	PasswordHash string     `db:"password"`
	Name         string     `db:"name"`
	Phone        *string    `db:"phone"`
	Role         UserRole   `db:"role"`
	Status       UserStatus `db:"status"`
}

// CanManage reports whether the role may change booking statuses and see
// other users' bookings.
func (r UserRole) CanManage() bool {
	return r == RoleManager || r == RoleAdmin
}

func (r UserRole) Valid() bool {
	return r == RoleClient || r == RoleManager || r == RoleAdmin
}
