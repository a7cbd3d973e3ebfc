package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория журнала бронирований
type BookingRepository interface {
	GetSlot(id domain.SlotID) (domain.BookingSlot, bool)
	Create(booking domain.Booking) error
	GetByID(id string) (domain.Booking, error)
	GetBySlotID(slotID domain.SlotID) (domain.Booking, error)
	List() []domain.Booking
	UpdateStatus(id string, from, to domain.BookingStatus) error
	Cancel(id string, from domain.BookingStatus) error
	Save(ctx context.Context) error
}

// ServiceCatalog интерфейс чтения услуг для деталей и выгрузки
type ServiceCatalog interface {
	ListServices() []domain.Service
}

// Metrics интерфейс бизнес-метрик бронирований
type Metrics interface {
	IncBookingCreated()
	IncBookingConflict()
	IncBookingStatusChange(status string)
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
