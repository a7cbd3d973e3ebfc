package me

import (
	"net/http"
	"time"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
	"github.com/m04kA/SPAuto-BookingService/internal/api/middleware"
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

const msgUnauthorized = "authentication required"

// MeResponse текущий администратор и срок действия сессии
type MeResponse struct {
	User      domain.User `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Warn("GET /auth/me - Session missing in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, MeResponse{
		User:      session.User,
		ExpiresAt: session.ExpiresAt,
	})
}
