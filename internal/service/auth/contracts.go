package auth

import (
	"context"
	"time"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

// CredentialStore источник учётных данных администраторов
type CredentialStore interface {
	// Lookup возвращает пользователя и bcrypt-хэш его пароля
	Lookup(username string) (domain.User, string, error)
}

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	Put(s domain.Session)
	Get(id string) (domain.Session, error)
	Delete(id string) bool
	PurgeExpired(now time.Time) int
	Save(ctx context.Context) error
}

// Metrics интерфейс метрик входа
type Metrics interface {
	IncLoginAttempt(result string)
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
