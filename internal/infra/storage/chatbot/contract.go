package chatbot

import "context"

// Store интерфейс key-value хранилища
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Ключи хранилища
const (
	KeyMessages  = "chatbotMessages"
	KeyQuestions = "predefinedQuestions"
)
