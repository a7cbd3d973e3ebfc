package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/SPAuto-BookingService/internal/infra/storage/catalog"
)

// Service сервис каталога: услуги, часы работы и профиль мастерской
type Service struct {
	repo   Repository
	newID  IDGenerator
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo Repository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		newID:  uuid.NewString,
		logger: logger,
	}
}

// WithIDGenerator подменяет генератор ID (для тестов)
func (s *Service) WithIDGenerator(gen IDGenerator) *Service {
	s.newID = gen
	return s
}

// ListServices возвращает все услуги в порядке добавления
func (s *Service) ListServices() []domain.Service {
	return s.repo.ListServices()
}

// GetService возвращает услугу по ID
func (s *Service) GetService(id string) (domain.Service, error) {
	service, err := s.repo.GetService(id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return domain.Service{}, ErrServiceNotFound
		}
		return domain.Service{}, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}
	return service, nil
}

// AddService добавляет услугу. Пустой ID заменяется сгенерированным.
// Данные не проверяются: форму валидирует вызывающая сторона.
func (s *Service) AddService(ctx context.Context, service domain.Service) (domain.Service, error) {
	if service.ID == "" {
		service.ID = s.newID()
	}

	s.repo.AddService(service)
	if err := s.save(ctx, "AddService"); err != nil {
		return domain.Service{}, err
	}

	s.logger.Info("AddService: added service id=%s, name=%s", service.ID, service.Name)
	return service, nil
}

// UpdateService заменяет услугу с тем же ID. Неизвестный ID игнорируется.
func (s *Service) UpdateService(ctx context.Context, service domain.Service) error {
	if !s.repo.UpdateService(service) {
		s.logger.Warn("UpdateService: service id=%s not found, nothing to update", service.ID)
		return nil
	}
	if err := s.save(ctx, "UpdateService"); err != nil {
		return err
	}

	s.logger.Info("UpdateService: updated service id=%s", service.ID)
	return nil
}

// DeleteService удаляет услугу. Слоты и бронирования услуги не затрагиваются.
func (s *Service) DeleteService(ctx context.Context, id string) error {
	if !s.repo.DeleteService(id) {
		s.logger.Warn("DeleteService: service id=%s not found, nothing to delete", id)
		return nil
	}
	if err := s.save(ctx, "DeleteService"); err != nil {
		return err
	}

	s.logger.Info("DeleteService: deleted service id=%s", id)
	return nil
}

// GetHours возвращает недельное расписание
func (s *Service) GetHours() domain.ShopHours {
	return s.repo.Hours()
}

// HoursFor возвращает часы работы на день недели указанной даты
func (s *Service) HoursFor(date time.Time) domain.DayHours {
	return s.repo.Hours().ForWeekday(date.Weekday())
}

// SetHours заменяет недельное расписание целиком
func (s *Service) SetHours(ctx context.Context, hours domain.ShopHours) error {
	if err := hours.Validate(); err != nil {
		s.logger.Warn("SetHours: invalid hours: %v", err)
		return err
	}

	s.repo.SetHours(hours)
	if err := s.save(ctx, "SetHours"); err != nil {
		return err
	}

	s.logger.Info("SetHours: weekly schedule updated")
	return nil
}

// GetShopProfile возвращает профиль мастерской
func (s *Service) GetShopProfile() domain.ShopProfile {
	return s.repo.Profile()
}

// SetShopProfile заменяет профиль мастерской
func (s *Service) SetShopProfile(ctx context.Context, profile domain.ShopProfile) error {
	s.repo.SetProfile(profile)
	if err := s.save(ctx, "SetShopProfile"); err != nil {
		return err
	}

	s.logger.Info("SetShopProfile: profile updated, name=%s", profile.Name)
	return nil
}

func (s *Service) save(ctx context.Context, op string) error {
	if err := s.repo.Save(ctx); err != nil {
		s.logger.Error("%s: failed to persist catalog: %v", op, err)
		return fmt.Errorf("%w: %s - save: %v", ErrInternal, op, err)
	}
	return nil
}
