package dto

import (
	"time"

	"mangarate/internal/webapi/models"
)

// UserResponse for GET /api/auth/me
type UserResponse struct {
	ID           int64     `json:"id"`
	OpenID       string    `json:"open_id"`
	Name         *string   `json:"name,omitempty"`
	Email        *string   `json:"email,omitempty"`
	LoginMethod  *string   `json:"login_method,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	LastSignedIn time.Time `json:"last_signed_in"`
}

// LogoutResponse for POST /api/auth/logout
type LogoutResponse struct {
	Success bool `json:"success"`
}

// FromModelToUserResponse converts a User model to UserResponse DTO
func FromModelToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:           user.ID,
		OpenID:       user.OpenID,
		Name:         user.Name,
		Email:        user.Email,
		LoginMethod:  user.LoginMethod,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
		LastSignedIn: user.LastSignedIn,
	}
}
