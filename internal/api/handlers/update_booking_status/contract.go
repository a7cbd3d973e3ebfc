package update_booking_status

import (
	"context"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

type BookingService interface {
	UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
