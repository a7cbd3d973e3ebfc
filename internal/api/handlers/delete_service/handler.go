package delete_service

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
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

// Handle DELETE /api/v1/admin/services/{serviceId}
// Слоты и бронирования удаленной услуги остаются в журнале.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	if err := h.service.DeleteService(r.Context(), serviceID); err != nil {
		h.logger.Error("DELETE /admin/services/{id} - Failed to delete service: service_id=%s, error=%v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/services/{id} - Service delete processed: service_id=%s", serviceID)
	w.WriteHeader(http.StatusNoContent)
}
