package get_slot_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
	"github.com/m04kA/SPAuto-BookingService/internal/service/bookings"
)

const (
	msgInvalidParams = "date (YYYY-MM-DD), timeStart (HH:MM) and serviceId are required"
	msgNotFound      = "no booking for this slot"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/slots/booking
// Query params: date, timeStart, serviceId (все обязательны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	slotID, err := ToSlotID(q.Get("date"), q.Get("timeStart"), q.Get("serviceId"))
	if err != nil {
		h.logger.Warn("GET /admin/slots/booking - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	booking, err := h.service.GetBookingBySlotID(slotID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /admin/slots/booking - No booking: slot=%s", slotID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /admin/slots/booking - Failed to get booking: slot=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/slots/booking - Booking retrieved successfully: slot=%s, booking_id=%s", slotID, booking.ID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
