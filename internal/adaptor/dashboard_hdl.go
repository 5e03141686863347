package adaptor

import (
	"net/http"

	"resort-booking/internal/usecase"
	"resort-booking/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

// GetStats handles GET /api/admin/dashboard
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get dashboard stats")
		return
	}

	utils.ResponseSuccess(w, "Dashboard statistics retrieved successfully", stats)
}

// GetPopularResorts handles GET /api/admin/popular
func (h *DashboardHandler) GetPopularResorts(w http.ResponseWriter, r *http.Request) {
	resorts, err := h.service.GetPopularResorts(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get popular resorts")
		return
	}

	utils.ResponseSuccess(w, "Popular resorts retrieved successfully", resorts)
}
