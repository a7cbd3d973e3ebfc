package chatbot

import (
	"context"
	"time"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

// Repository интерфейс репозитория чат-бота
type Repository interface {
	Messages(conversationID string) []domain.ChatMessage
	AppendMessages(conversationID string, msgs ...domain.ChatMessage)
	ClearMessages(conversationID string)
	Questions() []domain.ChatbotQuestion
	AddQuestion(q domain.ChatbotQuestion)
	UpdateQuestion(id, question, answer string) bool
	DeleteQuestion(id string) bool
	Save(ctx context.Context) error
}

// Metrics интерфейс бизнес-метрик чат-бота
type Metrics interface {
	IncChatbotQuestion(matched bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
