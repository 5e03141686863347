package usecase

import "errors"

// Sentinel errors the handlers translate into HTTP statuses. Credential
// failures stay deliberately generic so callers cannot tell a missing
// account from a wrong password.
var (
	ErrValidation           = errors.New("validation failed")
	ErrEmailExists          = errors.New("email already exists")
	ErrPhoneExists          = errors.New("phone already exists")
	ErrInvalidAdminKey      = errors.New("invalid admin key")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUseAdminLogin        = errors.New("please use admin login for admin accounts")
	ErrInvalidAdminLogin    = errors.New("invalid admin credentials")
	ErrResetTokenInvalid    = errors.New("invalid or expired reset token")
	ErrCurrentPasswordWrong = errors.New("current password is incorrect")
	ErrNotFound             = errors.New("not found")
	ErrCannotDeleteAdmin    = errors.New("cannot delete other admin users")
)
