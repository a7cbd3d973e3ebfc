package get_slot_booking

import (
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetBookingBySlotID(slotID domain.SlotID) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
