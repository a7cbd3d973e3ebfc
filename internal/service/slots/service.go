package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/pkg/types"
)

// Service генератор слотов бронирования
type Service struct {
	repo         LedgerRepository
	catalog      CatalogReader
	metrics      Metrics
	bootstrap    BootstrapOptions
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр генератора слотов
func NewService(
	repo LedgerRepository,
	catalog CatalogReader,
	metrics Metrics,
	bootstrap BootstrapOptions,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		catalog:      catalog,
		metrics:      metrics,
		bootstrap:    bootstrap,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Generate создает слоты [t, t+interval) начиная со StartTime, пока t < EndTime.
// Слот, который закончился бы после 23:59, обрезается до 23:59.
// Уже существующие слоты (та же дата, время начала и услуга) пропускаются,
// возвращаются только созданные.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) ([]domain.BookingSlot, error) {
	s.logger.Info("GenerateSlots: date=%s, start=%s, end=%s, interval=%d, service=%s",
		req.Date, req.StartTime, req.EndTime, req.Interval, req.ServiceID)

	candidates, err := buildSlots(req)
	if err != nil {
		s.logger.Warn("GenerateSlots: invalid request: %v", err)
		return nil, err
	}

	created := s.repo.InsertSlots(candidates)
	if len(created) > 0 {
		if err := s.repo.Save(ctx); err != nil {
			s.logger.Error("GenerateSlots: failed to persist slots: %v", err)
			return nil, fmt.Errorf("%w: GenerateSlots - save: %v", ErrInternal, err)
		}
	}
	s.metrics.AddSlotsGenerated(len(created))

	s.logger.Info("GenerateSlots: created %d of %d slots for date=%s, service=%s",
		len(created), len(candidates), req.Date, req.ServiceID)
	return created, nil
}

// Bootstrap заполняет расписание на ближайшие дни для всех услуг каталога.
// Вызывается только при первом запуске, когда слоты ещё не сохранялись.
func (s *Service) Bootstrap(ctx context.Context) (int, error) {
	opts := s.bootstrap
	if opts.Days <= 0 {
		s.logger.Info("Bootstrap: disabled, days=%d", opts.Days)
		return 0, nil
	}

	services := s.catalog.ListServices()
	hours := s.catalog.GetHours()
	today := truncateToDay(s.timeProvider.Now())

	var candidates []domain.BookingSlot
	for day := 0; day < opts.Days; day++ {
		date := today.AddDate(0, 0, day)
		if date.Weekday() == opts.ClosedWeekday || !hours.IsOpenOn(date) {
			continue
		}

		for _, service := range services {
			daySlots, err := buildSlots(GenerateRequest{
				Date:      date.Format(domain.DateFormat),
				StartTime: opts.OpenTime,
				EndTime:   opts.CloseTime,
				Interval:  opts.Interval,
				ServiceID: service.ID,
			})
			if err != nil {
				s.logger.Error("Bootstrap: invalid bootstrap range: %v", err)
				return 0, err
			}
			candidates = append(candidates, daySlots...)
		}
	}

	created := s.repo.InsertSlots(candidates)
	if err := s.repo.Save(ctx); err != nil {
		s.logger.Error("Bootstrap: failed to persist slots: %v", err)
		return 0, fmt.Errorf("%w: Bootstrap - save: %v", ErrInternal, err)
	}
	s.metrics.AddSlotsGenerated(len(created))

	s.logger.Info("Bootstrap: generated %d slots for %d services over %d days",
		len(created), len(services), opts.Days)
	return len(created), nil
}

func buildSlots(req GenerateRequest) ([]domain.BookingSlot, error) {
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}
	if req.ServiceID == "" {
		return nil, fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: start: %v", ErrInvalidTimeRange, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: end: %v", ErrInvalidTimeRange, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return nil, fmt.Errorf("%w: start %s must be before end %s", ErrInvalidTimeRange, req.StartTime, req.EndTime)
	}
	if req.Interval <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidInterval, req.Interval)
	}

	var slots []domain.BookingSlot
	for t := req.StartTime; t.IsBefore(req.EndTime); {
		end, err := t.AddMinutes(req.Interval)
		if errors.Is(err, types.ErrTimeOverflow) {
			end = types.EndOfDay
		} else if err != nil {
			return nil, fmt.Errorf("%w: slot starting at %s: %v", ErrInvalidTimeRange, t, err)
		}
		slots = append(slots, domain.NewBookingSlot(req.Date, t, end, req.ServiceID))
		t = end
	}
	return slots, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
