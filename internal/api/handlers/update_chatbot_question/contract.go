package update_chatbot_question

import (
	"context"
)

type ChatbotService interface {
	UpdateQuestion(ctx context.Context, id, question, answer string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
