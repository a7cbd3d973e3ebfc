package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SPAuto-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SPAuto-BookingService/internal/service/bookings/models"
)

// maxStatusAttempts число попыток смены статуса при параллельных изменениях
const maxStatusAttempts = 3

// Service сервис журнала бронирований
type Service struct {
	bookingRepo  BookingRepository
	catalog      ServiceCatalog
	metrics      Metrics
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalog ServiceCatalog,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// WithIDGenerator подменяет генератор ID (для тестов)
func (s *Service) WithIDGenerator(gen func() string) *Service {
	s.newID = gen
	return s
}

// CreateBooking создает бронирование в статусе pending и занимает слот.
// Проверка доступности и занятие слота выполняются атомарно в репозитории.
func (s *Service) CreateBooking(ctx context.Context, data domain.BookingData) (string, error) {
	s.logger.Info("CreateBooking: slot=%s, service=%s", data.SlotID, data.ServiceID)

	booking := domain.Booking{
		ID:              s.newID(),
		SlotID:          data.SlotID,
		ServiceID:       data.ServiceID,
		CustomerName:    data.Customer.Name,
		CustomerEmail:   data.Customer.Email,
		CustomerPhone:   data.Customer.Phone,
		VehicleMake:     data.Vehicle.Make,
		VehicleModel:    data.Vehicle.Model,
		VehicleYear:     data.Vehicle.Year,
		AdditionalNotes: data.AdditionalNotes,
		Status:          domain.StatusPending,
		CreatedAt:       s.timeProvider.Now(),
	}

	if err := s.bookingRepo.Create(booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
			s.metrics.IncBookingConflict()
			s.logger.Warn("CreateBooking: slot=%s is not available", data.SlotID)
			return "", ErrSlotUnavailable
		}
		s.logger.Error("CreateBooking: repository error for slot=%s: %v", data.SlotID, err)
		return "", fmt.Errorf("%w: CreateBooking - repository error: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.Save(ctx); err != nil {
		s.logger.Error("CreateBooking: failed to persist booking id=%s: %v", booking.ID, err)
		return "", fmt.Errorf("%w: CreateBooking - save: %v", ErrInternal, err)
	}

	s.metrics.IncBookingCreated()
	s.logger.Info("CreateBooking: successfully created booking id=%s for slot=%s", booking.ID, data.SlotID)
	return booking.ID, nil
}

// UpdateBookingStatus меняет статус бронирования по правилам конечного автомата.
// Переход в cancelled освобождает слот.
func (s *Service) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	s.logger.Info("UpdateBookingStatus: booking id=%s, status=%s", id, status)

	if _, err := domain.ParseBookingStatus(string(status)); err != nil {
		s.logger.Warn("UpdateBookingStatus: invalid status=%s for booking id=%s", status, id)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for attempt := 0; attempt < maxStatusAttempts; attempt++ {
		booking, err := s.bookingRepo.GetByID(id)
		if err != nil {
			return s.mapLookupError("UpdateBookingStatus", id, err)
		}

		if err := domain.CheckTransition(booking.Status, status); err != nil {
			s.logger.Warn("UpdateBookingStatus: booking id=%s: %v", id, err)
			return err
		}

		if status == domain.StatusCancelled {
			err = s.bookingRepo.Cancel(id, booking.Status)
		} else {
			err = s.bookingRepo.UpdateStatus(id, booking.Status, status)
		}

		switch {
		case err == nil:
			if err := s.bookingRepo.Save(ctx); err != nil {
				s.logger.Error("UpdateBookingStatus: failed to persist booking id=%s: %v", id, err)
				return fmt.Errorf("%w: UpdateBookingStatus - save: %v", ErrInternal, err)
			}
			s.metrics.IncBookingStatusChange(string(status))
			s.logger.Info("UpdateBookingStatus: booking id=%s changed %s -> %s", id, booking.Status, status)
			return nil
		case errors.Is(err, bookingRepo.ErrStatusConflict):
			s.logger.Warn("UpdateBookingStatus: booking id=%s changed concurrently, retrying", id)
			continue
		default:
			return s.mapLookupError("UpdateBookingStatus", id, err)
		}
	}

	s.logger.Warn("UpdateBookingStatus: booking id=%s gave up after %d attempts", id, maxStatusAttempts)
	return ErrConcurrentUpdate
}

// CancelBooking отменяет бронирование и освобождает слот
func (s *Service) CancelBooking(ctx context.Context, id string) error {
	return s.UpdateBookingStatus(ctx, id, domain.StatusCancelled)
}

// GetBookingBySlotID возвращает активное бронирование слота, иначе самое позднее
func (s *Service) GetBookingBySlotID(slotID domain.SlotID) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetBySlotID(slotID)
	if err != nil {
		return nil, s.mapLookupError("GetBookingBySlotID", slotID.String(), err)
	}
	return models.FromDomainBooking(&booking), nil
}

// GetBookingDetails возвращает бронирование вместе со слотом и услугой
func (s *Service) GetBookingDetails(id string) (*models.BookingDetailsResponse, error) {
	booking, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, s.mapLookupError("GetBookingDetails", id, err)
	}

	details := &models.BookingDetailsResponse{Booking: *models.FromDomainBooking(&booking)}
	if slot, ok := s.bookingRepo.GetSlot(booking.SlotID); ok {
		details.Slot = &slot
	}
	if service, ok := s.serviceIndex()[booking.ServiceID]; ok {
		details.Service = &service
	}
	return details, nil
}

// ListBookings возвращает бронирования по фильтру, новые первыми
func (s *Service) ListBookings(req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings := s.filtered(filter)
	s.logger.Info("ListBookings: search=%q, status=%v, found=%d", filter.Search, filter.Status, len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Dashboard считает сводку журнала на текущую дату
func (s *Service) Dashboard() *models.DashboardResponse {
	today := s.timeProvider.Now().Format(domain.DateFormat)

	stats := domain.DashboardStats{
		BookingsByService: make(map[string]int),
		TodayBookings:     []domain.Booking{},
	}
	for _, b := range s.bookingRepo.List() {
		stats.TotalBookings++
		switch b.Status {
		case domain.StatusPending:
			stats.PendingBookings++
		case domain.StatusConfirmed:
			stats.ConfirmedBookings++
		case domain.StatusCompleted:
			stats.CompletedBookings++
		case domain.StatusCancelled:
			stats.CancelledBookings++
		}
		stats.BookingsByService[b.ServiceID]++
		if b.SlotID.Date == today {
			stats.TodayBookings = append(stats.TodayBookings, b)
		}
	}
	sort.SliceStable(stats.TodayBookings, func(i, j int) bool {
		return stats.TodayBookings[i].SlotID.TimeStart < stats.TodayBookings[j].SlotID.TimeStart
	})

	return models.FromDomainDashboard(today, stats)
}

func (s *Service) filtered(filter domain.BookingFilter) []domain.Booking {
	all := s.bookingRepo.List()
	result := make([]domain.Booking, 0, len(all))
	for _, b := range all {
		if filter.Matches(b) {
			result = append(result, b)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func (s *Service) serviceIndex() map[string]domain.Service {
	services := s.catalog.ListServices()
	index := make(map[string]domain.Service, len(services))
	for _, svc := range services {
		index[svc.ID] = svc
	}
	return index
}

func (s *Service) mapLookupError(op, id string, err error) error {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		s.logger.Warn("%s: booking %s not found", op, id)
		return ErrBookingNotFound
	}
	s.logger.Error("%s: repository error for %s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
