package list_chatbot_questions

import (
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

type ChatbotService interface {
	ListQuestions() []domain.ChatbotQuestion
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
