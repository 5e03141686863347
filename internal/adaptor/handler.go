package adaptor

import (
	"errors"
	"net/http"

	"resort-booking/internal/usecase"
	"resort-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Resort    *ResortHandler
	Dashboard *DashboardHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, service.Auth, log),
		Resort:    NewResortHandler(service.Resort, config.App.UploadPath, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
	}
}

// handleServiceError maps service sentinels to HTTP responses. Anything
// unmatched is infrastructure trouble and becomes a generic 500; the
// details stay in the logs.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrEmailExists),
		errors.Is(err, usecase.ErrPhoneExists):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrUseAdminLogin),
		errors.Is(err, usecase.ErrInvalidAdminLogin):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidAdminKey),
		errors.Is(err, usecase.ErrCannotDeleteAdmin):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrResetTokenInvalid),
		errors.Is(err, usecase.ErrCurrentPasswordWrong):
		log.Warn(operation+" failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Resource not found")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
