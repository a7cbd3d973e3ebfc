package get_time_slots

import (
	"github.com/m04kA/SPAuto-BookingService/internal/service/calendar"
)

type CalendarService interface {
	TimeSlots(date, serviceID string) []calendar.TimeSlot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
