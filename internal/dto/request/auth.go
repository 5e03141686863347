package request

// RegisterRequest accepts both "name" and the legacy "fullName" field the
// older frontend pages still send.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required_without=FullName"`
	FullName string `json:"fullName" validate:"-"`
	Email    string `json:"email" validate:"required,email"`
	Address  string `json:"address" validate:"required"`
	Phone    string `json:"phone" validate:"required,len=10,phone"`
	Password string `json:"password" validate:"required,password"`
	AdminKey string `json:"adminKey,omitempty" validate:"-"`
}

// ResolvedName prefers name over fullName
func (r *RegisterRequest) ResolvedName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.FullName
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	ResetToken  string `json:"resetToken" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,password"`
}
