package get_shop

import (
	"net/http"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
)

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

// Handle GET /api/v1/shop
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	profile := h.service.GetShopProfile()

	h.logger.Info("GET /shop - Shop profile retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, profile)
}
