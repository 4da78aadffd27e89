package response

import (
	"travel-booking/internal/data/entity"
)

type UserResponse struct {
	ID     string            `json:"id" validate:"required,uuid4"`
	Email  string            `json:"email" validate:"required,email"`
	Name   string            `json:"name" validate:"required"`
	Phone  *string           `json:"phone,omitempty"`
	Role   entity.UserRole   `json:"role" validate:"required,oneof=CLIENT MANAGER ADMIN"`
	Status entity.UserStatus `json:"status" validate:"required,oneof=ACTIVE BLOCKED"`
}

type AuthResponse struct {
	User         UserResponse `json:"user" validate:"required"`
	AccessToken  string       `json:"access_token" validate:"required"`
	RefreshToken string       `json:"refresh_token" validate:"required,uuid4"`
}

func UserToResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:     u.ID.String(),
		Email:  u.Email,
		Name:   u.Name,
		Phone:  u.Phone,
		Role:   u.Role,
		Status: u.Status,
	}
}
