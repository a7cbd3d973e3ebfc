package get_chat_messages

import (
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

type ChatbotService interface {
	Messages(conversationID string) []domain.ChatMessage
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
