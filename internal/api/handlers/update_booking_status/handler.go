package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStatus      = "status must be one of pending, confirmed, completed, cancelled"
	msgNotFound           = "booking not found"
	msgInvalidTransition  = "status change is not allowed"
	msgConcurrentWrite    = "booking was modified concurrently, please retry"
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

// Handle PATCH /api/v1/admin/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid status: booking_id=%s, status=%q", bookingID, req.Status)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	err = h.service.UpdateBookingStatus(r.Context(), bookingID, status)
	if err != nil {
		var te *domain.TransitionError
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.As(err, &te):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Transition rejected: booking_id=%s, %s -> %s",
				bookingID, te.From, te.To)
			handlers.RespondConflict(w, msgInvalidTransition+": "+string(te.From)+" -> "+string(te.To))

		case errors.Is(err, bookings.ErrConcurrentUpdate):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Concurrent update: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgConcurrentWrite)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/status - Failed to update status: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/status - Status updated successfully: booking_id=%s, status=%s",
		bookingID, status)
	handlers.RespondJSON(w, http.StatusOK, UpdateStatusResponse{ID: bookingID, Status: string(status)})
}
