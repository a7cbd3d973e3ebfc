package get_calendar

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
	"github.com/m04kA/SPAuto-BookingService/internal/service/calendar"
)

// CalendarResponse окно календаря для услуги
type CalendarResponse struct {
	ServiceID string                     `json:"serviceId"`
	Days      []calendar.DayAvailability `json:"days"`
}

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	days := h.service.Calendar(serviceID)

	h.logger.Info("GET /services/{id}/calendar - Calendar retrieved successfully: service_id=%s, days=%d", serviceID, len(days))
	handlers.RespondJSON(w, http.StatusOK, CalendarResponse{
		ServiceID: serviceID,
		Days:      days,
	})
}
