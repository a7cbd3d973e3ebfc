package list_chatbot_questions

import (
	"net/http"

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

// Handle GET /api/v1/chatbot/questions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	questions := h.service.ListQuestions()
	if questions == nil {
		questions = []domain.ChatbotQuestion{}
	}

	h.logger.Info("GET /chatbot/questions - Questions retrieved: count=%d", len(questions))
	handlers.RespondJSON(w, http.StatusOK, questions)
}
