package clear_chat

import (
	"context"
)

type ChatbotService interface {
	ClearChat(ctx context.Context, conversationID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
