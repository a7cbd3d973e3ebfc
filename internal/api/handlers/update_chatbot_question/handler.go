package update_chatbot_question

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

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

// Handle PUT /api/v1/admin/chatbot/questions/{questionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["questionId"]

	var form handlers.QuestionForm
	if err := handlers.DecodeJSON(r, &form); err != nil {
		h.logger.Warn("PUT /admin/chatbot/questions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := form.Validate(); err != nil {
		if fields, ok := handlers.ValidationFields(err); ok {
			h.logger.Warn("PUT /admin/chatbot/questions/{id} - Validation failed: question_id=%s, fields=%d", questionID, len(fields))
			handlers.RespondValidationError(w, fields)
			return
		}
		h.logger.Error("PUT /admin/chatbot/questions/{id} - Validation error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if err := h.service.UpdateQuestion(r.Context(), questionID, form.Question, form.Answer); err != nil {
		switch {
		case errors.Is(err, chatbot.ErrInvalidQuestion):
			h.logger.Warn("PUT /admin/chatbot/questions/{id} - Invalid question: question_id=%s", questionID)
			handlers.RespondBadRequest(w, msgInvalidQuestion)

		default:
			h.logger.Error("PUT /admin/chatbot/questions/{id} - Failed to update question: question_id=%s, error=%v", questionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/chatbot/questions/{id} - Question update processed: question_id=%s", questionID)
	handlers.RespondJSON(w, http.StatusOK, domain.ChatbotQuestion{
		ID:       questionID,
		Question: form.Question,
		Answer:   form.Answer,
	})
}
