package get_available_slots

import (
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

// SlotReader интерфейс чтения слотов журнала бронирований
type SlotReader interface {
	Slots() []domain.BookingSlot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
