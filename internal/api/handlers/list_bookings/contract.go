package list_bookings

import (
	"github.com/m04kA/SPAuto-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	ListBookings(req *models.ListBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
