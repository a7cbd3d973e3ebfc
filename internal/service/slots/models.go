package slots

import (
	"time"

	"github.com/m04kA/SPAuto-BookingService/pkg/types"
)

// GenerateRequest параметры генерации слотов на одну дату для одной услуги
type GenerateRequest struct {
	Date      string
	StartTime types.TimeString
	EndTime   types.TimeString
	Interval  int // минуты
	ServiceID string
}

// BootstrapOptions параметры первичного заполнения расписания
type BootstrapOptions struct {
	Days          int
	OpenTime      types.TimeString
	CloseTime     types.TimeString
	Interval      int
	ClosedWeekday time.Weekday
}
