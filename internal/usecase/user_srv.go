package usecase

import (
	"context"
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
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	GetUserByID(ctx context.Context, userID string) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, userID string, req *request.AdminUpdateUserRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, actorID uuid.UUID, userID string) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get profile",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	// 1. Validate
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	req.Phone = strings.TrimSpace(req.Phone)

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Load current record
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	// 3. A changed phone must stay globally unique
	if req.Phone != user.Phone {
		existing, err := s.repo.User.FindByPhone(ctx, req.Phone)
		if err != nil {
			s.log.Error("Failed to check phone", zap.Error(err))
			return nil, fmt.Errorf("check phone: %w", err)
		}
		if existing != nil {
			return nil, ErrPhoneExists
		}
	}

	// 4. Apply and save
	user.Name = req.Name
	user.Address = req.Address
	user.Phone = req.Phone
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrPhoneExists
		}
		s.log.Error("Failed to update profile",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.Info("Profile updated", zap.String("user_id", userID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	users, err := s.repo.User.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get users",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get users: %w", err)
	}

	total, err := s.repo.User.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	s.log.Info("Users retrieved",
		zap.Int("count", len(users)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
	)

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		s.log.Warn("Invalid user ID format", zap.String("user_id", userID))
		return nil, fmt.Errorf("%w: invalid user id", ErrValidation)
	}

	return s.GetProfile(ctx, id)
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req *request.AdminUpdateUserRequest) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		s.log.Warn("Invalid user ID format", zap.String("user_id", userID))
		return nil, fmt.Errorf("%w: invalid user id", ErrValidation)
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user",
			zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	// A changed email must stay globally unique
	if req.Email != user.Email {
		existing, err := s.repo.User.FindByEmail(ctx, req.Email)
		if err != nil {
			s.log.Error("Failed to check email", zap.Error(err))
			return nil, fmt.Errorf("check email: %w", err)
		}
		if existing != nil {
			return nil, ErrEmailExists
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Role = entity.UserRole(req.Role)
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		s.log.Error("Failed to update user",
			zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Info("User updated by admin",
		zap.String("user_id", userID),
		zap.String("role", req.Role))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) DeleteUser(ctx context.Context, actorID uuid.UUID, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		s.log.Warn("Invalid user ID format", zap.String("user_id", userID))
		return fmt.Errorf("%w: invalid user id", ErrValidation)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user for delete",
			zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrNotFound
	}

	// Admins may remove themselves but never another admin
	if user.Role == entity.RoleAdmin && user.ID != actorID {
		s.log.Warn("Attempt to delete another admin",
			zap.String("actor_id", actorID.String()),
			zap.String("target_id", userID))
		return ErrCannotDeleteAdmin
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete user",
			zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}
