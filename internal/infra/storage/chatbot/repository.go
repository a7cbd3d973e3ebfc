package chatbot

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/internal/infra/kvstore"
)

// Repository хранит историю переписок (по ID диалога) и список готовых вопросов
type Repository struct {
	store Store

	mu        sync.RWMutex
	messages  map[string][]domain.ChatMessage
	questions []domain.ChatbotQuestion

	saveMu sync.Mutex
}

// NewRepository создает новый экземпляр репозитория чат-бота
func NewRepository(store Store) *Repository {
	return &Repository{
		store:    store,
		messages: make(map[string][]domain.ChatMessage),
	}
}

// Load читает состояние из хранилища. Если вопросы ещё не сохранялись, используются fallbackQuestions.
func (r *Repository) Load(ctx context.Context, fallbackQuestions []domain.ChatbotQuestion) error {
	messages := make(map[string][]domain.ChatMessage)
	err := kvstore.GetJSON(ctx, r.store, KeyMessages, &messages)
	if err != nil && !errors.Is(err, kvstore.ErrNotFound) {
		return fmt.Errorf("%w: Load - messages: %v", ErrLoad, err)
	}

	var questions []domain.ChatbotQuestion
	err = kvstore.GetJSON(ctx, r.store, KeyQuestions, &questions)
	switch {
	case errors.Is(err, kvstore.ErrNotFound):
		questions = append([]domain.ChatbotQuestion(nil), fallbackQuestions...)
	case err != nil:
		return fmt.Errorf("%w: Load - questions: %v", ErrLoad, err)
	}

	r.mu.Lock()
	r.messages = messages
	r.questions = questions
	r.mu.Unlock()

	return nil
}

// Save записывает историю и вопросы в хранилище
func (r *Repository) Save(ctx context.Context) error {
	r.saveMu.Lock()
	defer r.saveMu.Unlock()

	r.mu.RLock()
	messages := make(map[string][]domain.ChatMessage, len(r.messages))
	for id, msgs := range r.messages {
		messages[id] = append([]domain.ChatMessage(nil), msgs...)
	}
	questions := append([]domain.ChatbotQuestion{}, r.questions...)
	r.mu.RUnlock()

	if err := kvstore.SetJSON(ctx, r.store, KeyMessages, messages); err != nil {
		return fmt.Errorf("%w: Save - messages: %v", ErrSave, err)
	}
	if err := kvstore.SetJSON(ctx, r.store, KeyQuestions, questions); err != nil {
		return fmt.Errorf("%w: Save - questions: %v", ErrSave, err)
	}

	return nil
}

// Messages возвращает историю диалога в хронологическом порядке
func (r *Repository) Messages(conversationID string) []domain.ChatMessage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.ChatMessage{}, r.messages[conversationID]...)
}

// AppendMessages добавляет сообщения в конец диалога
func (r *Repository) AppendMessages(conversationID string, msgs ...domain.ChatMessage) {
	r.mu.Lock()
	r.messages[conversationID] = append(r.messages[conversationID], msgs...)
	r.mu.Unlock()
}

// ClearMessages удаляет историю диалога
func (r *Repository) ClearMessages(conversationID string) {
	r.mu.Lock()
	delete(r.messages, conversationID)
	r.mu.Unlock()
}

// Questions возвращает копию списка готовых вопросов
func (r *Repository) Questions() []domain.ChatbotQuestion {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.ChatbotQuestion{}, r.questions...)
}

// AddQuestion добавляет вопрос в конец списка
func (r *Repository) AddQuestion(q domain.ChatbotQuestion) {
	r.mu.Lock()
	r.questions = append(r.questions, q)
	r.mu.Unlock()
}

// UpdateQuestion меняет текст вопроса и ответа. Возвращает false, если вопрос не найден.
func (r *Repository) UpdateQuestion(id, question, answer string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.questions {
		if r.questions[i].ID == id {
			r.questions[i].Question = question
			r.questions[i].Answer = answer
			return true
		}
	}
	return false
}

// DeleteQuestion удаляет вопрос. Возвращает false, если вопрос не найден.
func (r *Repository) DeleteQuestion(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.questions {
		if r.questions[i].ID == id {
			r.questions = append(r.questions[:i], r.questions[i+1:]...)
			return true
		}
	}
	return false
}
