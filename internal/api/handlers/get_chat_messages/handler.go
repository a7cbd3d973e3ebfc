package get_chat_messages

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

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

// Handle GET /api/v1/chatbot/conversations/{conversationId}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["conversationId"]

	messages := h.service.Messages(conversationID)
	if messages == nil {
		messages = []domain.ChatMessage{}
	}

	h.logger.Info("GET /chatbot/conversations/{id}/messages - Messages retrieved: conversation_id=%s, count=%d",
		conversationID, len(messages))
	handlers.RespondJSON(w, http.StatusOK, messages)
}
