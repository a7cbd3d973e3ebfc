package update_hours

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

const msgInvalidRequestBody = "invalid request body"

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

// Handle PUT /api/v1/admin/hours
// Тело запроса - массив из семи дней, расписание заменяется целиком.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var hours domain.ShopHours
	if err := handlers.DecodeJSON(r, &hours); err != nil {
		h.logger.Warn("PUT /admin/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetHours(r.Context(), hours); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidHours):
			h.logger.Warn("PUT /admin/hours - Invalid hours: %v", err)
			handlers.RespondValidationError(w, map[string]string{
				"hours": strings.TrimPrefix(err.Error(), domain.ErrInvalidHours.Error()+": "),
			})

		default:
			h.logger.Error("PUT /admin/hours - Failed to update hours: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/hours - Shop hours updated successfully")
	handlers.RespondJSON(w, http.StatusOK, hours)
}
