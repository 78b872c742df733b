package dto

import (
	"time"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// UserRegisterRequest payload for new users.
type UserRegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserLoginRequest payload for login.
type UserLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest payload for profile picture changes.
type UpdateProfileRequest struct {
	ImageURL string `json:"imageUrl"`
}

// ChangePasswordRequest payload for password changes.
type ChangePasswordRequest struct {
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserView is the public shape of a user record. The password hash never
// leaves the service.
type UserView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	ImageURL  string    `json:"imageUrl"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserView maps a domain user to its response shape.
func NewUserView(user *domain.User) *UserView {
	if user == nil {
		return nil
	}
	return &UserView{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		ImageURL:  user.ImageURL,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
