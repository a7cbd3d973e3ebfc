package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/internal/service/bookings"
	"github.com/m04kA/SPAuto-BookingService/internal/service/catalog"
	"github.com/m04kA/SPAuto-BookingService/pkg/types"
)

// UseCase use case для создания бронирования клиентом
type UseCase struct {
	catalog ServiceCatalog
	ledger  BookingLedger
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog ServiceCatalog, ledger BookingLedger, logger Logger) *UseCase {
	return &UseCase{
		catalog: catalog,
		ledger:  ledger,
		logger:  logger,
	}
}

// Execute выполняет use case создания бронирования.
// При ошибке валидации обращений к хранилищу не происходит.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация формы
	if req != nil {
		normalize(req)
	}
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: service=%s, date=%s, time=%s", req.ServiceID, req.Date, req.TimeStart)

	// 2. Получаем услугу. Слот удаленной услуги остается доступным для записи,
	// название и цена в ответе тогда пустые.
	service, err := uc.catalog.GetService(req.ServiceID)
	switch {
	case errors.Is(err, catalog.ErrServiceNotFound):
		uc.logger.Warn("CreateBooking: service id=%s not in catalog, booking by slot only", req.ServiceID)
		service = domain.Service{ID: req.ServiceID}
	case err != nil:
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Создаем бронирование в журнале (проверка и занятие слота атомарны)
	slotID := domain.SlotID{
		Date:      req.Date,
		TimeStart: types.TimeString(req.TimeStart),
		ServiceID: req.ServiceID,
	}
	data := domain.BookingData{
		SlotID:    slotID,
		ServiceID: req.ServiceID,
		Customer: domain.Customer{
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		},
		Vehicle: domain.Vehicle{
			Make:  req.VehicleMake,
			Model: req.VehicleModel,
			Year:  req.VehicleYear,
		},
		AdditionalNotes: req.AdditionalNotes,
	}

	id, err := uc.ledger.CreateBooking(ctx, data)
	if err != nil {
		if errors.Is(err, bookings.ErrSlotUnavailable) {
			uc.logger.Warn("CreateBooking: slot=%s is not available", slotID)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: failed to create booking for slot=%s: %v", slotID, err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s for slot=%s", id, slotID)

	return &Response{
		BookingID:    id,
		Status:       domain.StatusPending,
		SlotID:       slotID,
		ServiceName:  service.Name,
		ServicePrice: service.Price,
	}, nil
}
