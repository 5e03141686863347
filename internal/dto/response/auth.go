package response

import (
	"resort-booking/internal/data/entity"
)

// AuthResponse is returned by register and both login endpoints
type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// PublicUser carries the fields safe to show any caller
type PublicUser struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  entity.UserRole `json:"role"`
}

// ForgotPasswordResponse always looks the same for known and unknown emails.
// ResetToken is populated for development convenience only; a deployment
// would deliver it by email instead.
type ForgotPasswordResponse struct {
	ResetToken string `json:"resetToken,omitempty"`
}

func AuthToResponse(user *entity.User, token string) *AuthResponse {
	return &AuthResponse{
		Token: token,
		User: PublicUser{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}
}
