package catalog

import (
	"context"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

// Repository интерфейс репозитория каталога мастерской
type Repository interface {
	ListServices() []domain.Service
	GetService(id string) (domain.Service, error)
	AddService(service domain.Service)
	UpdateService(service domain.Service) bool
	DeleteService(id string) bool
	Hours() domain.ShopHours
	SetHours(hours domain.ShopHours)
	Profile() domain.ShopProfile
	SetProfile(profile domain.ShopProfile)
	Save(ctx context.Context) error
}

// IDGenerator генерирует идентификаторы новых услуг
type IDGenerator func() string

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
