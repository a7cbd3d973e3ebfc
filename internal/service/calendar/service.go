package calendar

import (
	"sort"
	"time"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

// Service логика календаря бронирования: доступные даты и слоты выбранной даты
type Service struct {
	slots        SlotReader
	hours        HoursReader
	windowDays   int
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(slots SlotReader, hours HoursReader, windowDays int, logger Logger) *Service {
	return &Service{
		slots:        slots,
		hours:        hours,
		windowDays:   windowDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// DateAvailability строит карту date -> доступна на windowDays дней начиная с сегодня.
// Дата доступна, если мастерская в этот день открыта и у услуги есть свободный слот.
func (s *Service) DateAvailability(serviceID string) map[string]bool {
	hours := s.hours.GetHours()
	today := s.today()

	availability := make(map[string]bool, s.windowDays)
	for day := 0; day < s.windowDays; day++ {
		date := today.AddDate(0, 0, day)
		key := date.Format(domain.DateFormat)
		availability[key] = hours.IsOpenOn(date) && len(s.slots.AvailableSlots(key, serviceID)) > 0
	}
	return availability
}

// Calendar возвращает окно календаря в хронологическом порядке
func (s *Service) Calendar(serviceID string) []DayAvailability {
	availability := s.DateAvailability(serviceID)
	today := s.today()

	days := make([]DayAvailability, 0, len(availability))
	for day := 0; day < s.windowDays; day++ {
		date := today.AddDate(0, 0, day).Format(domain.DateFormat)
		days = append(days, DayAvailability{
			Date:      date,
			Available: availability[date],
			Disabled:  s.IsDateDisabled(date, availability),
		})
	}

	s.logger.Info("Calendar: service=%s, window=%d days", serviceID, s.windowDays)
	return days
}

// IsDateDisabled: прошедшие даты недоступны всегда, остальные - только если
// в карте доступности явно стоит false. Даты вне карты не блокируются.
func (s *Service) IsDateDisabled(date string, availability map[string]bool) bool {
	d, err := time.ParseInLocation(domain.DateFormat, date, s.timeProvider.Now().Location())
	if err != nil {
		return true
	}
	if d.Before(s.today()) {
		return true
	}
	available, known := availability[date]
	return known && !available
}

// TimeSlots возвращает свободные слоты даты, отсортированные по времени начала
func (s *Service) TimeSlots(date, serviceID string) []TimeSlot {
	free := s.slots.AvailableSlots(date, serviceID)
	sort.Slice(free, func(i, j int) bool {
		return free[i].TimeStart < free[j].TimeStart
	})

	result := make([]TimeSlot, 0, len(free))
	for _, slot := range free {
		result = append(result, TimeSlot{
			SlotID:    slot.ID,
			TimeStart: slot.TimeStart.String(),
			TimeEnd:   slot.TimeEnd.String(),
			Label:     slot.TimeStart.Format12h(),
		})
	}
	return result
}

func (s *Service) today() time.Time {
	now := s.timeProvider.Now()
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
