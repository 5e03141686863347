package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"resort-booking/internal/data/entity"
	"resort-booking/internal/dto/request"
	"resort-booking/pkg/utils"

	"github.com/jackc/pgx/v5/pgconn"
)

func validRegisterRequest() *request.RegisterRequest {
	return &request.RegisterRequest{
		Name:     "Andi Wijaya",
		Email:    "andi@example.com",
		Address:  "Bandung",
		Phone:    "0812345678",
		Password: "Secret1!",
	}
}

func TestRegister(t *testing.T) {
	service, users, _ := newTestService()

	result, err := service.Auth.Register(context.Background(), validRegisterRequest())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if result.Token == "" {
		t.Error("registration must return a session token")
	}
	if result.User.Role != entity.RoleUser {
		t.Errorf("role = %q, want %q", result.User.Role, entity.RoleUser)
	}

	claims, err := utils.VerifyToken(result.Token, testJWTSecret)
	if err != nil {
		t.Fatalf("returned token does not verify: %v", err)
	}
	if claims.Role != string(entity.RoleUser) {
		t.Errorf("token role = %q, want %q", claims.Role, entity.RoleUser)
	}

	stored, _ := users.FindByEmail(context.Background(), "andi@example.com")
	if stored == nil {
		t.Fatal("user was not persisted")
	}
	if stored.PasswordHash == "Secret1!" {
		t.Error("password stored in plaintext")
	}
	if !utils.CheckPasswordHash("Secret1!", stored.PasswordHash) {
		t.Error("stored hash does not match the password")
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	service, users, _ := newTestService()

	req := validRegisterRequest()
	req.Email = "  Andi@Example.COM "

	if _, err := service.Auth.Register(context.Background(), req); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if stored, _ := users.FindByEmail(context.Background(), "andi@example.com"); stored == nil {
		t.Error("email was not lowercased and trimmed before storage")
	}
}

func TestRegisterLegacyFullName(t *testing.T) {
	service, users, _ := newTestService()

	req := validRegisterRequest()
	req.Name = ""
	req.FullName = "Andi Wijaya"

	if _, err := service.Auth.Register(context.Background(), req); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	stored, _ := users.FindByEmail(context.Background(), "andi@example.com")
	if stored == nil || stored.Name != "Andi Wijaya" {
		t.Error("fullName was not used as the account name")
	}
}

func TestRegisterDuplicates(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	if _, err := service.Auth.Register(ctx, validRegisterRequest()); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	dupEmail := validRegisterRequest()
	dupEmail.Phone = "0899999999"
	if _, err := service.Auth.Register(ctx, dupEmail); !errors.Is(err, ErrEmailExists) {
		t.Errorf("duplicate email error = %v, want ErrEmailExists", err)
	}

	dupPhone := validRegisterRequest()
	dupPhone.Email = "other@example.com"
	if _, err := service.Auth.Register(ctx, dupPhone); !errors.Is(err, ErrPhoneExists) {
		t.Errorf("duplicate phone error = %v, want ErrPhoneExists", err)
	}
}

func TestRegisterConflictRace(t *testing.T) {
	// Two registrations racing past the pre-checks end on the unique
	// index; the reported conflict must name the colliding field.
	tests := []struct {
		name       string
		constraint string
		wantErr    error
	}{
		{"phone index", "users_phone_key", ErrPhoneExists},
		{"email index", "users_email_key", ErrEmailExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, users, _ := newTestService()
			users.createErr = &pgconn.PgError{Code: "23505", ConstraintName: tt.constraint}

			if _, err := service.Auth.Register(context.Background(), validRegisterRequest()); !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	service, _, _ := newTestService()

	req := validRegisterRequest()
	req.Password = "password"

	if _, err := service.Auth.Register(context.Background(), req); !errors.Is(err, ErrValidation) {
		t.Errorf("weak password error = %v, want ErrValidation", err)
	}
}

func TestRegisterAdminKey(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	req := validRegisterRequest()
	req.AdminKey = testAdminKey

	result, err := service.Auth.Register(ctx, req)
	if err != nil {
		t.Fatalf("Register() with admin key error = %v", err)
	}
	if result.User.Role != entity.RoleAdmin {
		t.Errorf("role = %q, want %q", result.User.Role, entity.RoleAdmin)
	}

	wrong := validRegisterRequest()
	wrong.Email = "other@example.com"
	wrong.Phone = "0899999999"
	wrong.AdminKey = "wrong-key"

	if _, err := service.Auth.Register(ctx, wrong); !errors.Is(err, ErrInvalidAdminKey) {
		t.Errorf("wrong admin key error = %v, want ErrInvalidAdminKey", err)
	}
}

func TestLogin(t *testing.T) {
	service, users, _ := newTestService()
	ctx := context.Background()

	if _, err := service.Auth.Register(ctx, validRegisterRequest()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	result, err := service.Auth.Login(ctx, &request.LoginRequest{
		Email: "andi@example.com", Password: "Secret1!",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.Token == "" {
		t.Error("login must return a session token")
	}

	stored, _ := users.FindByEmail(ctx, "andi@example.com")
	if stored.LastLogin == nil {
		t.Error("last login timestamp was not recorded")
	}
}

func TestLoginFailures(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	if _, err := service.Auth.Register(ctx, validRegisterRequest()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name    string
		req     request.LoginRequest
		wantErr error
	}{
		{"wrong password", request.LoginRequest{Email: "andi@example.com", Password: "Wrong1!!"}, ErrInvalidCredentials},
		{"unknown email", request.LoginRequest{Email: "ghost@example.com", Password: "Secret1!"}, ErrInvalidCredentials},
		{"missing password", request.LoginRequest{Email: "andi@example.com"}, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.Auth.Login(ctx, &tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("Login() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoginSegregatesRoles(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	admin := validRegisterRequest()
	admin.AdminKey = testAdminKey
	if _, err := service.Auth.Register(ctx, admin); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	creds := &request.LoginRequest{Email: "andi@example.com", Password: "Secret1!"}

	// Admin account on the public login endpoint is redirected
	if _, err := service.Auth.Login(ctx, creds); !errors.Is(err, ErrUseAdminLogin) {
		t.Errorf("Login() error = %v, want ErrUseAdminLogin", err)
	}

	// but passes on the admin endpoint
	if _, err := service.Auth.AdminLogin(ctx, creds); err != nil {
		t.Errorf("AdminLogin() error = %v", err)
	}
}

func TestAdminLoginGenericFailure(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	if _, err := service.Auth.Register(ctx, validRegisterRequest()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// Regular account, wrong password and unknown email all collapse into
	// the same generic admin error
	tests := []request.LoginRequest{
		{Email: "andi@example.com", Password: "Secret1!"},
		{Email: "andi@example.com", Password: "Wrong1!!"},
		{Email: "ghost@example.com", Password: "Secret1!"},
	}

	for _, req := range tests {
		if _, err := service.Auth.AdminLogin(ctx, &req); !errors.Is(err, ErrInvalidAdminLogin) {
			t.Errorf("AdminLogin(%s) error = %v, want ErrInvalidAdminLogin", req.Email, err)
		}
	}

	// A malformed payload is a validation failure, not a credential one
	if _, err := service.Auth.AdminLogin(ctx, &request.LoginRequest{
		Email: "andi@example.com",
	}); !errors.Is(err, ErrValidation) {
		t.Errorf("AdminLogin() without password error = %v, want ErrValidation", err)
	}
}

func TestForgotAndResetPassword(t *testing.T) {
	service, users, _ := newTestService()
	ctx := context.Background()

	if _, err := service.Auth.Register(ctx, validRegisterRequest()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	token, err := service.Auth.ForgotPassword(ctx, "andi@example.com")
	if err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	if token == "" {
		t.Fatal("no reset token returned for a known email")
	}

	stored, _ := users.FindByEmail(ctx, "andi@example.com")
	if stored.ResetTokenHash == nil || *stored.ResetTokenHash == token {
		t.Error("plaintext token must not be stored, only its digest")
	}

	if err := service.Auth.ResetPassword(ctx, &request.ResetPasswordRequest{
		ResetToken: token, NewPassword: "NewSecret2!",
	}); err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}

	if _, err := service.Auth.Login(ctx, &request.LoginRequest{
		Email: "andi@example.com", Password: "NewSecret2!",
	}); err != nil {
		t.Errorf("Login() with new password error = %v", err)
	}

	// Token is single-use
	if err := service.Auth.ResetPassword(ctx, &request.ResetPasswordRequest{
		ResetToken: token, NewPassword: "Another3!",
	}); !errors.Is(err, ErrResetTokenInvalid) {
		t.Errorf("second ResetPassword() error = %v, want ErrResetTokenInvalid", err)
	}
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	service, _, _ := newTestService()

	token, err := service.Auth.ForgotPassword(context.Background(), "ghost@example.com")
	if err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	if token != "" {
		t.Error("unknown email must not yield a token")
	}
}

func TestResetPasswordExpiredToken(t *testing.T) {
	service, users, _ := newTestService()
	ctx := context.Background()

	if _, err := service.Auth.Register(ctx, validRegisterRequest()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	token, err := service.Auth.ForgotPassword(ctx, "andi@example.com")
	if err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}

	// Backdate the expiry
	stored, _ := users.FindByEmail(ctx, "andi@example.com")
	expired := time.Now().Add(-time.Minute)
	stored.ResetTokenExpiresAt = &expired

	if err := service.Auth.ResetPassword(ctx, &request.ResetPasswordRequest{
		ResetToken: token, NewPassword: "NewSecret2!",
	}); !errors.Is(err, ErrResetTokenInvalid) {
		t.Errorf("ResetPassword() error = %v, want ErrResetTokenInvalid", err)
	}

	// Old password still works
	if _, err := service.Auth.Login(ctx, &request.LoginRequest{
		Email: "andi@example.com", Password: "Secret1!",
	}); err != nil {
		t.Errorf("Login() with old password error = %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	service, users, _ := newTestService()
	ctx := context.Background()

	if _, err := service.Auth.Register(ctx, validRegisterRequest()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	stored, _ := users.FindByEmail(ctx, "andi@example.com")

	if err := service.Auth.ChangePassword(ctx, stored.ID, &request.ChangePasswordRequest{
		CurrentPassword: "wrong", NewPassword: "NewSecret2!",
	}); !errors.Is(err, ErrCurrentPasswordWrong) {
		t.Errorf("ChangePassword() error = %v, want ErrCurrentPasswordWrong", err)
	}

	if err := service.Auth.ChangePassword(ctx, stored.ID, &request.ChangePasswordRequest{
		CurrentPassword: "Secret1!", NewPassword: "NewSecret2!",
	}); err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}

	if _, err := service.Auth.Login(ctx, &request.LoginRequest{
		Email: "andi@example.com", Password: "NewSecret2!",
	}); err != nil {
		t.Errorf("Login() with new password error = %v", err)
	}
}
