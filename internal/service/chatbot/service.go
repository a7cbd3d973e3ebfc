package chatbot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

// Exchange пара сообщений: вопрос пользователя и ответ бота
type Exchange struct {
	UserMessage domain.ChatMessage `json:"userMessage"`
	BotMessage  domain.ChatMessage `json:"botMessage"`
}

// Service FAQ-бот с поиском ответа по подстроке
type Service struct {
	repo         Repository
	metrics      Metrics
	replyDelay   time.Duration
	fallback     string
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
}

// NewService создает новый экземпляр сервиса чат-бота
func NewService(repo Repository, metrics Metrics, replyDelay time.Duration, logger Logger) *Service {
	return &Service{
		repo:         repo,
		metrics:      metrics,
		replyDelay:   replyDelay,
		fallback:     domain.DefaultChatbotFallback,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// WithIDGenerator подменяет генератор ID (для тестов)
func (s *Service) WithIDGenerator(gen func() string) *Service {
	s.newID = gen
	return s
}

// Ask сохраняет сообщение пользователя, выдерживает паузу и отвечает.
// Если контекст отменён во время паузы, в истории остаётся только сообщение пользователя.
func (s *Service) Ask(ctx context.Context, conversationID, text string) (*Exchange, error) {
	if strings.TrimSpace(conversationID) == "" {
		return nil, fmt.Errorf("%w: conversation id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(text) == "" {
		s.logger.Warn("Ask: empty message in conversation=%s", conversationID)
		return nil, ErrEmptyMessage
	}

	userMsg := domain.ChatMessage{
		ID:        s.newID(),
		Sender:    domain.SenderUser,
		Text:      text,
		Timestamp: s.timeProvider.Now(),
	}
	s.repo.AppendMessages(conversationID, userMsg)

	if err := s.wait(ctx); err != nil {
		s.logger.Warn("Ask: conversation=%s cancelled before reply: %v", conversationID, err)
		if saveErr := s.repo.Save(context.WithoutCancel(ctx)); saveErr != nil {
			s.logger.Error("Ask: failed to persist conversation=%s: %v", conversationID, saveErr)
		}
		return nil, err
	}

	answer, matched := s.match(text)
	s.metrics.IncChatbotQuestion(matched)

	botMsg := domain.ChatMessage{
		ID:        s.newID(),
		Sender:    domain.SenderBot,
		Text:      answer,
		Timestamp: s.timeProvider.Now(),
	}
	s.repo.AppendMessages(conversationID, botMsg)

	if err := s.repo.Save(ctx); err != nil {
		s.logger.Error("Ask: failed to persist conversation=%s: %v", conversationID, err)
		return nil, fmt.Errorf("%w: Ask - save: %v", ErrInternal, err)
	}

	s.logger.Info("Ask: conversation=%s, matched=%t", conversationID, matched)
	return &Exchange{UserMessage: userMsg, BotMessage: botMsg}, nil
}

// Messages возвращает историю диалога
func (s *Service) Messages(conversationID string) []domain.ChatMessage {
	return s.repo.Messages(conversationID)
}

// ClearChat очищает историю диалога
func (s *Service) ClearChat(ctx context.Context, conversationID string) error {
	s.repo.ClearMessages(conversationID)
	if err := s.repo.Save(ctx); err != nil {
		s.logger.Error("ClearChat: failed to persist conversation=%s: %v", conversationID, err)
		return fmt.Errorf("%w: ClearChat - save: %v", ErrInternal, err)
	}

	s.logger.Info("ClearChat: conversation=%s cleared", conversationID)
	return nil
}

// ListQuestions возвращает готовые вопросы в порядке добавления
func (s *Service) ListQuestions() []domain.ChatbotQuestion {
	return s.repo.Questions()
}

// AddQuestion добавляет готовый вопрос. Пустой ID заменяется сгенерированным.
func (s *Service) AddQuestion(ctx context.Context, q domain.ChatbotQuestion) (domain.ChatbotQuestion, error) {
	if strings.TrimSpace(q.Question) == "" || strings.TrimSpace(q.Answer) == "" {
		return domain.ChatbotQuestion{}, ErrInvalidQuestion
	}
	if q.ID == "" {
		q.ID = s.newID()
	}

	s.repo.AddQuestion(q)
	if err := s.save(ctx, "AddQuestion"); err != nil {
		return domain.ChatbotQuestion{}, err
	}

	s.logger.Info("AddQuestion: added question id=%s", q.ID)
	return q, nil
}

// UpdateQuestion меняет текст вопроса и ответа. Неизвестный ID игнорируется.
func (s *Service) UpdateQuestion(ctx context.Context, id, question, answer string) error {
	if strings.TrimSpace(question) == "" || strings.TrimSpace(answer) == "" {
		return ErrInvalidQuestion
	}

	if !s.repo.UpdateQuestion(id, question, answer) {
		s.logger.Warn("UpdateQuestion: question id=%s not found, nothing to update", id)
		return nil
	}
	if err := s.save(ctx, "UpdateQuestion"); err != nil {
		return err
	}

	s.logger.Info("UpdateQuestion: updated question id=%s", id)
	return nil
}

// DeleteQuestion удаляет готовый вопрос. Неизвестный ID игнорируется.
func (s *Service) DeleteQuestion(ctx context.Context, id string) error {
	if !s.repo.DeleteQuestion(id) {
		s.logger.Warn("DeleteQuestion: question id=%s not found, nothing to delete", id)
		return nil
	}
	if err := s.save(ctx, "DeleteQuestion"); err != nil {
		return err
	}

	s.logger.Info("DeleteQuestion: deleted question id=%s", id)
	return nil
}

// match ищет первый вопрос, который содержит текст или содержится в нём (без учёта регистра)
func (s *Service) match(text string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(text))
	for _, q := range s.repo.Questions() {
		question := strings.ToLower(q.Question)
		if strings.Contains(question, needle) || strings.Contains(needle, question) {
			return q.Answer, true
		}
	}
	return s.fallback, false
}

func (s *Service) wait(ctx context.Context) error {
	if s.replyDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.replyDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Service) save(ctx context.Context, op string) error {
	if err := s.repo.Save(ctx); err != nil {
		s.logger.Error("%s: failed to persist questions: %v", op, err)
		return fmt.Errorf("%w: %s - save: %v", ErrInternal, op, err)
	}
	return nil
}
