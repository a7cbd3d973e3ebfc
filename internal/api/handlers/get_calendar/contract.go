package get_calendar

import (
	"github.com/m04kA/SPAuto-BookingService/internal/service/calendar"
)

type CalendarService interface {
	Calendar(serviceID string) []calendar.DayAvailability
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
