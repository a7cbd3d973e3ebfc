package get_booking

import (
	"github.com/m04kA/SPAuto-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetBookingDetails(id string) (*models.BookingDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
