package generate_slots

import (
	"context"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/internal/service/slots"
)

type SlotService interface {
	Generate(ctx context.Context, req slots.GenerateRequest) ([]domain.BookingSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
