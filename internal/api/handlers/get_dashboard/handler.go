package get_dashboard

import (
	"net/http"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dashboard := h.service.Dashboard()

	h.logger.Info("GET /admin/dashboard - Dashboard built: date=%s, total=%d, today=%d",
		dashboard.Date, dashboard.TotalBookings, len(dashboard.TodayBookings))
	handlers.RespondJSON(w, http.StatusOK, dashboard)
}
