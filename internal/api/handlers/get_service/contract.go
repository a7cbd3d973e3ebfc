package get_service

import (
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

type CatalogService interface {
	GetService(id string) (domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
