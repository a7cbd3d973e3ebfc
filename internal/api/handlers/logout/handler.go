package logout

import (
	"net/http"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
	"github.com/m04kA/SPAuto-BookingService/internal/api/middleware"
)

const msgUnauthorized = "authentication required"

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/logout
// Маршрут закрыт middleware.AdminAuth, сессия берётся из контекста.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Warn("POST /auth/logout - Session missing in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.service.Logout(r.Context(), session.ID); err != nil {
		h.logger.Error("POST /auth/logout - Failed to logout: session_id=%s, error=%v", session.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/logout - Logged out successfully: username=%s", session.User.Username)
	w.WriteHeader(http.StatusNoContent)
}
