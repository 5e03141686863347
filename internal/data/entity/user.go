package entity

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User identity record. Email and phone are unique across all users,
// enforced by database indexes. PasswordHash never leaves the data layer.
type User struct {
	Base
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password"`
	Address      string     `db:"address"`
	Phone        string     `db:"phone"`
	Role         UserRole   `db:"role"`
	LastLogin    *time.Time `db:"last_login"`

	// Single-use password reset state. Only the token digest is stored;
	// both fields are cleared after a successful reset.
	ResetTokenHash      *string    `db:"reset_token_hash"`
	ResetTokenExpiresAt *time.Time `db:"reset_token_expires_at"`
}
