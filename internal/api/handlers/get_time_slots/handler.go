package get_time_slots

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/internal/service/calendar"
)

const msgInvalidDate = "date must be in YYYY-MM-DD format"

// TimeSlotsResponse свободное время на дату, по возрастанию
type TimeSlotsResponse struct {
	Date      string              `json:"date"`
	ServiceID string              `json:"serviceId"`
	Slots     []calendar.TimeSlot `json:"slots"`
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

// Handle GET /api/v1/services/{serviceId}/time-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]
	date := strings.TrimSpace(r.URL.Query().Get("date"))

	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		h.logger.Warn("GET /services/{id}/time-slots - Invalid date: date=%q", date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slots := h.service.TimeSlots(date, serviceID)

	h.logger.Info("GET /services/{id}/time-slots - Time slots retrieved successfully: service_id=%s, date=%s, count=%d",
		serviceID, date, len(slots))
	handlers.RespondJSON(w, http.StatusOK, TimeSlotsResponse{
		Date:      date,
		ServiceID: serviceID,
		Slots:     slots,
	})
}
