package login

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
	"github.com/m04kA/SPAuto-BookingService/internal/service/auth"
	"github.com/m04kA/SPAuto-BookingService/pkg/validation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidCredentials = "invalid username or password"
)

var loginMessages = validation.Messages{
	"username": "Username is required",
	"password": "Password is required",
}

// LoginRequest учётные данные администратора
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if err := handlers.Validate(&req, loginMessages); err != nil {
		if fields, ok := handlers.ValidationFields(err); ok {
			h.logger.Warn("POST /auth/login - Validation failed: fields=%d", len(fields))
			handlers.RespondValidationError(w, fields)
			return
		}
		h.logger.Error("POST /auth/login - Validation error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: username=%s", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/login - Failed to login: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Logged in successfully: username=%s", result.User.Username)
	handlers.RespondJSON(w, http.StatusOK, result)
}
