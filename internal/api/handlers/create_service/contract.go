package create_service

import (
	"context"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

type CatalogService interface {
	AddService(ctx context.Context, service domain.Service) (domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
