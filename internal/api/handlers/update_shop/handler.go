package update_shop

import (
	"net/http"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	service ShopService
	logger  Logger
}

func NewHandler(service ShopService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/shop
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var form ShopProfileForm
	if err := handlers.DecodeJSON(r, &form); err != nil {
		h.logger.Warn("PUT /admin/shop - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	form.normalize()
	if err := handlers.Validate(&form, profileMessages); err != nil {
		if fields, ok := handlers.ValidationFields(err); ok {
			h.logger.Warn("PUT /admin/shop - Validation failed: fields=%d", len(fields))
			handlers.RespondValidationError(w, fields)
			return
		}
		h.logger.Error("PUT /admin/shop - Validation error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	profile := form.ToDomain()
	if err := h.service.SetShopProfile(r.Context(), profile); err != nil {
		h.logger.Error("PUT /admin/shop - Failed to update shop profile: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /admin/shop - Shop profile updated successfully: name=%s", profile.Name)
	handlers.RespondJSON(w, http.StatusOK, profile)
}
