package create_chatbot_question

import (
	"context"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

type ChatbotService interface {
	AddQuestion(ctx context.Context, q domain.ChatbotQuestion) (domain.ChatbotQuestion, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
