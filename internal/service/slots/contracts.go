package slots

import (
	"context"
	"time"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

// LedgerRepository интерфейс репозитория слотов
type LedgerRepository interface {
	InsertSlots(slots []domain.BookingSlot) []domain.BookingSlot
	Save(ctx context.Context) error
}

// CatalogReader интерфейс чтения каталога для первичной генерации слотов
type CatalogReader interface {
	ListServices() []domain.Service
	GetHours() domain.ShopHours
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	AddSlotsGenerated(n int)
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
