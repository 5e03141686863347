package wire

import (
	"resort-booking/internal/adaptor"
	"resort-booking/pkg/middleware"
	"resort-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROFILE ROUTES ====================
	r.Route("/api/users/me", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))

		r.Get("/", userHandler.GetMe)
		r.Put("/", userHandler.UpdateMe)
		r.Put("/password", userHandler.ChangePassword)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		r.Get("/", userHandler.GetUsers)
		r.Get("/{id}", userHandler.GetUserByID)
		r.Put("/{id}", userHandler.UpdateUser)
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
