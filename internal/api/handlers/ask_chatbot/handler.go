package ask_chatbot

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
	"github.com/m04kA/SPAuto-BookingService/internal/service/chatbot"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmptyMessage       = "message text is required"
	msgInvalidInput       = "conversation id is required"
)

// AskRequest сообщение пользователя
type AskRequest struct {
	Text string `json:"text"`
}

type Handler struct {
	service ChatbotService
	logger  Logger
}

func NewHandler(service ChatbotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/chatbot/conversations/{conversationId}/messages
// Ответ приходит после паузы; при разрыве соединения в истории остаётся только вопрос.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["conversationId"]

	var req AskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /chatbot/conversations/{id}/messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	exchange, err := h.service.Ask(r.Context(), conversationID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, chatbot.ErrEmptyMessage):
			h.logger.Warn("POST /chatbot/conversations/{id}/messages - Empty message: conversation_id=%s", conversationID)
			handlers.RespondBadRequest(w, msgEmptyMessage)

		case errors.Is(err, chatbot.ErrInvalidInput):
			h.logger.Warn("POST /chatbot/conversations/{id}/messages - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			// клиент ушёл, отвечать некому
			h.logger.Warn("POST /chatbot/conversations/{id}/messages - Request cancelled: conversation_id=%s", conversationID)

		default:
			h.logger.Error("POST /chatbot/conversations/{id}/messages - Failed to answer: conversation_id=%s, error=%v", conversationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /chatbot/conversations/{id}/messages - Message answered: conversation_id=%s", conversationID)
	handlers.RespondJSON(w, http.StatusOK, exchange)
}
