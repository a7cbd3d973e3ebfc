package delete_chatbot_question

import (
	"context"
)

type ChatbotService interface {
	DeleteQuestion(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
