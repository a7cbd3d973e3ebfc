package clear_chat

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
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

// Handle DELETE /api/v1/chatbot/conversations/{conversationId}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["conversationId"]

	if err := h.service.ClearChat(r.Context(), conversationID); err != nil {
		h.logger.Error("DELETE /chatbot/conversations/{id}/messages - Failed to clear chat: conversation_id=%s, error=%v",
			conversationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /chatbot/conversations/{id}/messages - Chat cleared: conversation_id=%s", conversationID)
	w.WriteHeader(http.StatusNoContent)
}
