package get_hours

import (
	"net/http"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
)

type Handler struct {
	service HoursService
	logger  Logger
}

func NewHandler(service HoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hours := h.service.GetHours()

	h.logger.Info("GET /hours - Shop hours retrieved successfully: days=%d", len(hours))
	handlers.RespondJSON(w, http.StatusOK, hours)
}
