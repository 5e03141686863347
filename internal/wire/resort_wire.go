package wire

import (
	"resort-booking/internal/adaptor"
	"resort-booking/pkg/middleware"
	"resort-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireResort(
	r chi.Router,
	resortHandler *adaptor.ResortHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Search must register before {id} so "search" is not taken for an ID
	r.Get("/api/resorts", resortHandler.GetResorts)
	r.Get("/api/resorts/search", resortHandler.SearchResorts)
	r.Get("/api/resorts/{id}", resortHandler.GetResortByID)

	// ==================== ADMIN ROUTES ====================
	// Flat registrations: GET /api/admin/resorts/popular lives in the
	// dashboard wiring and a subrouter mount here would shadow it.
	admin := r.With(
		middleware.Authenticate(config.JWT.Secret, log),
		middleware.Admin(log),
	)

	admin.Post("/api/admin/resorts", resortHandler.CreateResort)
	admin.Put("/api/admin/resorts/{id}", resortHandler.UpdateResort)
	admin.Delete("/api/admin/resorts/{id}", resortHandler.DeleteResort)
}
