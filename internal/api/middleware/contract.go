package middleware

import (
	"time"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

// Authenticator проверяет токен администратора
type Authenticator interface {
	Authenticate(token string) (domain.Session, error)
}

// HTTPMetrics интерфейс метрик HTTP-запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
