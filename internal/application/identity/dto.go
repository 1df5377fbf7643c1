package identity

import (
	"time"

	"github.com/cartrade/backend/internal/domain/identity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoginRequest carries login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the token pair and the logged-in user
type LoginResponse struct {
	AccessToken           string       `json:"access_token"`
	RefreshToken          string       `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time    `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time    `json:"refresh_token_expires_at"`
	TokenType             string       `json:"token_type"`
	User                  UserResponse `json:"user"`
}

// RefreshTokenRequest carries the refresh token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResponse carries the renewed token pair
type RefreshTokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// ChangePasswordRequest carries the old and new passwords
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// CreateUserRequest carries the fields to create a user
type CreateUserRequest struct {
	Username              string           `json:"username" binding:"required"`
	FullName              string           `json:"full_name"`
	Role                  string           `json:"role" binding:"required"`
	Phone                 string           `json:"phone"`
	Password              string           `json:"password" binding:"required,min=8"`
	DefaultCommissionRate *decimal.Decimal `json:"default_commission_rate"`
}

// UserResponse is the API representation of a user
type UserResponse struct {
	ID                    uuid.UUID       `json:"id"`
	Username              string          `json:"username"`
	FullName              string          `json:"full_name"`
	Role                  string          `json:"role"`
	Phone                 string          `json:"phone"`
	DefaultCommissionRate decimal.Decimal `json:"default_commission_rate"`
	IsActive              bool            `json:"is_active"`
	CreatedAt             time.Time       `json:"created_at"`
}

func toUserResponse(u *identity.User) *UserResponse {
	return &UserResponse{
		ID:                    u.ID,
		Username:              u.Username,
		FullName:              u.FullName,
		Role:                  string(u.Role),
		Phone:                 u.Phone,
		DefaultCommissionRate: u.DefaultCommissionRate,
		IsActive:              u.IsActive,
		CreatedAt:             u.CreatedAt,
	}
}
