package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/internal/infra/kvstore"
)

// Snapshot состояние каталога: услуги, часы работы и профиль мастерской
type Snapshot struct {
	Services []domain.Service
	Hours    domain.ShopHours
	Profile  domain.ShopProfile
}

// Repository хранит каталог в памяти и сохраняет его в key-value хранилище по явному вызову Save
type Repository struct {
	store Store

	mu       sync.RWMutex
	services []domain.Service
	hours    domain.ShopHours
	profile  domain.ShopProfile

	saveMu sync.Mutex
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// Load читает каталог из хранилища.
// Для каждого отсутствующего ключа используется соответствующая часть fallback (первый запуск).
func (r *Repository) Load(ctx context.Context, fallback Snapshot) error {
	var services []domain.Service
	found, err := r.get(ctx, KeyServices, &services)
	if err != nil {
		return err
	}
	if !found {
		services = fallback.Services
	}

	var hours domain.ShopHours
	found, err = r.get(ctx, KeyHours, &hours)
	if err != nil {
		return err
	}
	if !found {
		hours = fallback.Hours
	}

	var profile domain.ShopProfile
	found, err = r.get(ctx, KeyShopInfo, &profile)
	if err != nil {
		return err
	}
	if !found {
		profile = fallback.Profile
	}

	r.mu.Lock()
	r.services = cloneServices(services)
	r.hours = cloneHours(hours)
	r.profile = cloneProfile(profile)
	r.mu.Unlock()

	return nil
}

func (r *Repository) get(ctx context.Context, key string, dst interface{}) (bool, error) {
	err := kvstore.GetJSON(ctx, r.store, key, dst)
	if errors.Is(err, kvstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Load - %s: %v", ErrLoad, key, err)
	}
	return true, nil
}

// Save записывает текущее состояние каталога в хранилище
func (r *Repository) Save(ctx context.Context) error {
	r.saveMu.Lock()
	defer r.saveMu.Unlock()

	snap := r.Snapshot()

	if err := kvstore.SetJSON(ctx, r.store, KeyServices, snap.Services); err != nil {
		return fmt.Errorf("%w: Save - services: %v", ErrSave, err)
	}
	if err := kvstore.SetJSON(ctx, r.store, KeyHours, snap.Hours); err != nil {
		return fmt.Errorf("%w: Save - hours: %v", ErrSave, err)
	}
	if err := kvstore.SetJSON(ctx, r.store, KeyShopInfo, snap.Profile); err != nil {
		return fmt.Errorf("%w: Save - shopInfo: %v", ErrSave, err)
	}

	return nil
}

// Snapshot возвращает копию текущего состояния
func (r *Repository) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return Snapshot{
		Services: cloneServices(r.services),
		Hours:    cloneHours(r.hours),
		Profile:  r.profile,
	}
}

// ListServices возвращает копию списка услуг в порядке добавления
func (r *Repository) ListServices() []domain.Service {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneServices(r.services)
}

// GetService возвращает услугу по ID
func (r *Repository) GetService(id string) (domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.services {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Service{}, ErrServiceNotFound
}

// AddService добавляет услугу в конец списка.
// Услуга с уже существующим ID заменяется на месте.
func (r *Repository) AddService(service domain.Service) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.services {
		if r.services[i].ID == service.ID {
			r.services[i] = service
			return
		}
	}
	r.services = append(r.services, service)
}

// UpdateService заменяет услугу с тем же ID. Возвращает false, если услуга не найдена.
func (r *Repository) UpdateService(service domain.Service) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.services {
		if r.services[i].ID == service.ID {
			r.services[i] = service
			return true
		}
	}
	return false
}

// DeleteService удаляет услугу. Возвращает false, если услуга не найдена.
func (r *Repository) DeleteService(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.services {
		if r.services[i].ID == id {
			r.services = append(r.services[:i], r.services[i+1:]...)
			return true
		}
	}
	return false
}

// Hours возвращает копию расписания
func (r *Repository) Hours() domain.ShopHours {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneHours(r.hours)
}

// SetHours заменяет расписание целиком
func (r *Repository) SetHours(hours domain.ShopHours) {
	r.mu.Lock()
	r.hours = cloneHours(hours)
	r.mu.Unlock()
}

// Profile возвращает профиль мастерской
func (r *Repository) Profile() domain.ShopProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneProfile(r.profile)
}

// SetProfile заменяет профиль мастерской
func (r *Repository) SetProfile(profile domain.ShopProfile) {
	r.mu.Lock()
	r.profile = cloneProfile(profile)
	r.mu.Unlock()
}

func cloneServices(in []domain.Service) []domain.Service {
	out := make([]domain.Service, len(in))
	copy(out, in)
	return out
}

func cloneHours(in domain.ShopHours) domain.ShopHours {
	out := make(domain.ShopHours, len(in))
	copy(out, in)
	return out
}

func cloneProfile(in domain.ShopProfile) domain.ShopProfile {
	out := in
	out.Images = append([]string(nil), in.Images...)
	out.Staff = append([]domain.StaffMember(nil), in.Staff...)
	return out
}
