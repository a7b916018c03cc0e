package dto

import (
	"time"

	"recruit_backend/internal/feature/auth/domain/entity"
)

// UserRes is the public profile of a user. The password hash is never included.
type UserRes struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// AuthRes is the response for successful signup and login.
type AuthRes struct {
	Token string  `json:"token"`
	User  UserRes `json:"user"`
}

// NewUserRes maps a domain user to its public representation.
func NewUserRes(u *entity.User) UserRes {
	return UserRes{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
