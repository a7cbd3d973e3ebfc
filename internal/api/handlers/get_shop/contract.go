package get_shop

import (
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

type ShopService interface {
	GetShopProfile() domain.ShopProfile
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
