package export_bookings

import (
	"github.com/m04kA/SPAuto-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	ExportBookings(req *models.ListBookingsRequest) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
