package update_hours

import (
	"context"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

type HoursService interface {
	SetHours(ctx context.Context, hours domain.ShopHours) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
