package calendar

import (
	"time"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

// SlotReader интерфейс чтения свободных слотов
type SlotReader interface {
	AvailableSlots(date, serviceID string) []domain.BookingSlot
}

// HoursReader интерфейс чтения расписания мастерской
type HoursReader interface {
	GetHours() domain.ShopHours
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
