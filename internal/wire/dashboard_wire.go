package wire

import (
	"resort-booking/internal/adaptor"
	"resort-booking/pkg/middleware"
	"resort-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDashboard(
	r chi.Router,
	dashboardHandler *adaptor.DashboardHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Registered as flat paths; mounting a subrouter at /api/admin would
	// collide with the user and resort admin groups.
	admin := r.With(
		middleware.Authenticate(config.JWT.Secret, log),
		middleware.Admin(log),
	)

	admin.Get("/api/admin/dashboard/stats", dashboardHandler.GetStats)
	admin.Get("/api/admin/resorts/popular", dashboardHandler.GetPopularResorts)
}
