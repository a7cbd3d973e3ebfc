package create_chatbot_question

import (
	"errors"
	"net/http"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/internal/service/chatbot"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidQuestion    = "question and answer are required"
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

// Handle POST /api/v1/admin/chatbot/questions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var form handlers.QuestionForm
	if err := handlers.DecodeJSON(r, &form); err != nil {
		h.logger.Warn("POST /admin/chatbot/questions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := form.Validate(); err != nil {
		if fields, ok := handlers.ValidationFields(err); ok {
			h.logger.Warn("POST /admin/chatbot/questions - Validation failed: fields=%d", len(fields))
			handlers.RespondValidationError(w, fields)
			return
		}
		h.logger.Error("POST /admin/chatbot/questions - Validation error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	created, err := h.service.AddQuestion(r.Context(), domain.ChatbotQuestion{
		Question: form.Question,
		Answer:   form.Answer,
	})
	if err != nil {
		switch {
		case errors.Is(err, chatbot.ErrInvalidQuestion):
			h.logger.Warn("POST /admin/chatbot/questions - Invalid question: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuestion)

		default:
			h.logger.Error("POST /admin/chatbot/questions - Failed to add question: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/chatbot/questions - Question created: question_id=%s", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
