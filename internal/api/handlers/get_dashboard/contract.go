package get_dashboard

import (
	"github.com/m04kA/SPAuto-BookingService/internal/service/bookings/models"
)

type DashboardService interface {
	Dashboard() *models.DashboardResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
