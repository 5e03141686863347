package response

import (
	"time"

	"resort-booking/internal/data/entity"
)

type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Address   string          `json:"address"`
	Phone     string          `json:"phone"`
	Role      entity.UserRole `json:"role"`
	LastLogin *time.Time      `json:"last_login,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// UserToResponse strips everything the password hash and reset fields touch
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Address:   user.Address,
		Phone:     user.Phone,
		Role:      user.Role,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
}
