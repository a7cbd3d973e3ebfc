package get_hours

import (
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

type HoursService interface {
	GetHours() domain.ShopHours
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
