package generate_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
	"github.com/m04kA/SPAuto-BookingService/internal/service/slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "date must be in YYYY-MM-DD format"
	msgInvalidTimeRange   = "startTime must be before endTime"
	msgInvalidInterval    = "interval must be a positive number of minutes"
	msgInvalidInput       = "invalid slot parameters"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Generate(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidDate):
			h.logger.Warn("POST /admin/slots - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, slots.ErrInvalidTimeRange):
			h.logger.Warn("POST /admin/slots - Invalid time range: start=%s, end=%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, slots.ErrInvalidInterval):
			h.logger.Warn("POST /admin/slots - Invalid interval: interval=%d", req.Interval)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /admin/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/slots - Failed to generate slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/slots - Slots generated successfully: date=%s, service_id=%s, created=%d",
		req.Date, req.ServiceID, len(created))
	handlers.RespondJSON(w, http.StatusCreated, GenerateSlotsResponse{
		Created: len(created),
		Slots:   handlers.FromDomainSlots(created),
	})
}
