package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resort-booking/internal/data/entity"
	"resort-booking/internal/data/repository"
	"resort-booking/internal/dto/request"
	"resort-booking/internal/dto/response"
	"resort-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	AdminLogin(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
	ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	req.Name = strings.TrimSpace(req.ResolvedName())
	req.Email = normalizeEmail(req.Email)
	req.Address = strings.TrimSpace(req.Address)
	req.Phone = strings.TrimSpace(req.Phone)

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Check email not taken
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, ErrEmailExists
	}

	// 3. Check phone not taken
	existingUser, err = s.repo.User.FindByPhone(ctx, req.Phone)
	if err != nil {
		s.log.Error("Failed to check phone", zap.Error(err), zap.String("phone", req.Phone))
		return nil, fmt.Errorf("check phone: %w", err)
	}
	if existingUser != nil {
		return nil, ErrPhoneExists
	}

	// 4. Admin key decides the role. The key is compared against its
	// bcrypt hash from config, never against a plaintext secret.
	role := entity.RoleUser
	if req.AdminKey != "" {
		if bcrypt.CompareHashAndPassword([]byte(s.config.Auth.AdminKeyHash), []byte(req.AdminKey)) != nil {
			s.log.Warn("Registration with invalid admin key", zap.String("email", req.Email))
			return nil, ErrInvalidAdminKey
		}
		role = entity.RoleAdmin
	}

	// 5. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 6. Create user
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Address:      req.Address,
		Phone:        req.Phone,
		Role:         role,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		// Unique index catches registrations racing past the pre-checks;
		// the constraint name tells which field actually collided.
		if repository.IsUniqueViolation(err) {
			if strings.Contains(repository.UniqueConstraint(err), "phone") {
				return nil, ErrPhoneExists
			}
			return nil, ErrEmailExists
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	// 7. Issue token
	token, err := s.issueToken(user)
	if err != nil {
		s.log.Error("Failed to issue token after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))

	return response.AuthToResponse(user, token), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := s.verifyCredentials(ctx, req)
	if err != nil {
		return nil, err
	}

	// The public login endpoint only serves user accounts
	if user.Role == entity.RoleAdmin {
		s.log.Warn("Admin account on user login endpoint", zap.String("user_id", user.ID.String()))
		return nil, ErrUseAdminLogin
	}

	return s.finishLogin(ctx, user)
}

func (s *authService) AdminLogin(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := s.verifyCredentials(ctx, req)
	if err != nil {
		// A malformed payload is still a validation failure; only
		// credential checks collapse into the same generic shape
		if errors.Is(err, ErrValidation) {
			return nil, err
		}
		return nil, ErrInvalidAdminLogin
	}

	if user.Role != entity.RoleAdmin {
		s.log.Warn("Non-admin account on admin login endpoint", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidAdminLogin
	}

	return s.finishLogin(ctx, user)
}

// ForgotPassword starts the reset flow. For an unknown email it returns an
// empty token and no error so the response shape cannot be used to probe
// which emails are registered.
func (s *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to look up email for reset", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Info("Password reset requested for unknown email")
		return "", nil
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		s.log.Error("Failed to generate reset token", zap.Error(err))
		return "", fmt.Errorf("generate reset token: %w", err)
	}

	expiresAt := time.Now().Add(time.Duration(s.config.Auth.ResetExpiryMinutes) * time.Minute)

	// Only the digest is stored; the plaintext goes back to the caller once
	if err := s.repo.User.SetResetToken(ctx, user.ID, utils.HashResetToken(token), expiresAt); err != nil {
		s.log.Error("Failed to store reset token",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", fmt.Errorf("store reset token: %w", err)
	}

	s.log.Info("Password reset token issued",
		zap.String("user_id", user.ID.String()),
		zap.Time("expires_at", expiresAt))

	return token, nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	// 1. Validate input (token presence and new password policy)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reset password validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Look up by token digest
	user, err := s.repo.User.FindByResetTokenHash(ctx, utils.HashResetToken(req.ResetToken))
	if err != nil {
		s.log.Error("Failed to look up reset token", zap.Error(err))
		return fmt.Errorf("find reset token: %w", err)
	}
	if user == nil || user.ResetTokenExpiresAt == nil {
		return ErrResetTokenInvalid
	}

	// 3. Expired tokens fail the same way as unknown ones. Fields stay
	// untouched so a fresh request can be issued.
	if time.Now().After(*user.ResetTokenExpiresAt) {
		s.log.Warn("Expired reset token used", zap.String("user_id", user.ID.String()))
		return ErrResetTokenInvalid
	}

	// 4. Re-hash and clear the token in one write so it is single-use
	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash new password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.ResetPassword(ctx, user.ID, hashedPassword); err != nil {
		s.log.Error("Failed to reset password",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("reset password: %w", err)
	}

	s.log.Info("Password reset completed", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Change password validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user for password change",
			zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrNotFound
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		s.log.Warn("Password change with wrong current password",
			zap.String("user_id", userID.String()))
		return ErrCurrentPasswordWrong
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash new password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		s.log.Error("Failed to update password",
			zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("update password: %w", err)
	}

	s.log.Info("Password changed", zap.String("user_id", userID.String()))
	return nil
}

// ==================== HELPER METHODS ====================

// verifyCredentials finds the account and checks the password. Every failure
// maps to the same ErrInvalidCredentials.
func (s *authService) verifyCredentials(ctx context.Context, req *request.LoginRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err))
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil {
		s.log.Warn("Login for unknown email")
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login with wrong password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *authService) finishLogin(ctx context.Context, user *entity.User) (*response.AuthResponse, error) {
	token, err := s.issueToken(user)
	if err != nil {
		s.log.Error("Failed to issue token",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	// Best effort, a failed timestamp must not block the login
	if err := s.repo.User.UpdateLastLogin(ctx, user.ID); err != nil {
		s.log.Warn("Failed to update last login",
			zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return response.AuthToResponse(user, token), nil
}

// issueToken signs a session token. Admin sessions are shorter-lived.
func (s *authService) issueToken(user *entity.User) (string, error) {
	expiryHours := s.config.JWT.UserExpiryHours
	if user.Role == entity.RoleAdmin {
		expiryHours = s.config.JWT.AdminExpiryHours
	}

	return utils.GenerateToken(
		user.ID.String(),
		string(user.Role),
		user.Email,
		s.config.JWT.Secret,
		time.Duration(expiryHours)*time.Hour,
	)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
