package create_booking

import (
	"context"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	GetService(id string) (domain.Service, error)
}

// BookingLedger интерфейс журнала бронирований
type BookingLedger interface {
	CreateBooking(ctx context.Context, data domain.BookingData) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
