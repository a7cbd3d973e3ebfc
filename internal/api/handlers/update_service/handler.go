package update_service

import (
	"net/http"

	"github.com/gorilla/mux"

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

// Handle PUT /api/v1/admin/services/{serviceId}
// Неизвестный ID не считается ошибкой: каталог не меняется.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	var form handlers.ServiceForm
	if err := handlers.DecodeJSON(r, &form); err != nil {
		h.logger.Warn("PUT /admin/services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := form.Validate(); err != nil {
		if fields, ok := handlers.ValidationFields(err); ok {
			h.logger.Warn("PUT /admin/services/{id} - Validation failed: service_id=%s, fields=%d", serviceID, len(fields))
			handlers.RespondValidationError(w, fields)
			return
		}
		h.logger.Error("PUT /admin/services/{id} - Validation error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	service := form.ToDomain(serviceID)
	if err := h.service.UpdateService(r.Context(), service); err != nil {
		h.logger.Error("PUT /admin/services/{id} - Failed to update service: service_id=%s, error=%v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /admin/services/{id} - Service update processed: service_id=%s", serviceID)
	handlers.RespondJSON(w, http.StatusOK, service)
}
