package export_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
	listBookings "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/list_bookings"
	"github.com/m04kA/SPAuto-BookingService/internal/service/bookings"
)

const (
	msgInvalidParams = "invalid query parameters"
	exportFileName   = "bookings.xlsx"
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

// Handle GET /api/v1/admin/bookings/export
// Query params совпадают со списком бронирований: search, status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.ExportBookings(listBookings.ToServiceRequest(r.URL.Query()))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings/export - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /admin/bookings/export - Failed to export bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", bookings.ExportContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("GET /admin/bookings/export - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /admin/bookings/export - Export sent successfully: bytes=%d", len(data))
}
