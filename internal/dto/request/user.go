package request

// UpdateProfileRequest lets a user change their own contact details
type UpdateProfileRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required,len=10,phone"`
}

// AdminUpdateUserRequest is the admin console's user edit payload.
// Only name, email and role may be changed there.
type AdminUpdateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=user admin"`
}
