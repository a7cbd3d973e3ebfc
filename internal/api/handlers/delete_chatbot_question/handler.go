package delete_chatbot_question

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

// Handle DELETE /api/v1/admin/chatbot/questions/{questionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["questionId"]

	if err := h.service.DeleteQuestion(r.Context(), questionID); err != nil {
		h.logger.Error("DELETE /admin/chatbot/questions/{id} - Failed to delete question: question_id=%s, error=%v", questionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/chatbot/questions/{id} - Question delete processed: question_id=%s", questionID)
	w.WriteHeader(http.StatusNoContent)
}
