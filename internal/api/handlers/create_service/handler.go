package create_service

import (
	"net/http"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var form handlers.ServiceForm
	if err := handlers.DecodeJSON(r, &form); err != nil {
		h.logger.Warn("POST /admin/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := form.Validate(); err != nil {
		if fields, ok := handlers.ValidationFields(err); ok {
			h.logger.Warn("POST /admin/services - Validation failed: fields=%d", len(fields))
			handlers.RespondValidationError(w, fields)
			return
		}
		h.logger.Error("POST /admin/services - Validation error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	created, err := h.service.AddService(r.Context(), form.ToDomain(""))
	if err != nil {
		h.logger.Error("POST /admin/services - Failed to add service: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/services - Service created successfully: service_id=%s", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
