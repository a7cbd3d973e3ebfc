package ask_chatbot

import (
	"context"

	"github.com/m04kA/SPAuto-BookingService/internal/service/chatbot"
)

type ChatbotService interface {
	Ask(ctx context.Context, conversationID, text string) (*chatbot.Exchange, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
