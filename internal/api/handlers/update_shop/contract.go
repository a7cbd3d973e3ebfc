package update_shop

import (
	"context"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

type ShopService interface {
	SetShopProfile(ctx context.Context, profile domain.ShopProfile) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
