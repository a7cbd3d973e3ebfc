package get_available_slots

import (
	"context"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

// UseCase use case для получения доступных слотов услуги на дату
type UseCase struct {
	slots  SlotReader
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slots SlotReader, logger Logger) *UseCase {
	return &UseCase{
		slots:  slots,
		logger: logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Отсутствие совпадений не является ошибкой: возвращается пустой список.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Фильтруем слоты: дата, услуга и доступность
	available := domain.AvailableSlots(uc.slots.Slots(), req.Date, req.ServiceID)

	uc.logger.Info("GetAvailableSlots: service=%s, date=%s, available=%d", req.ServiceID, req.Date, len(available))

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     available,
	}, nil
}
