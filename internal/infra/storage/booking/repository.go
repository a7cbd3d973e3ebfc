package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/internal/infra/kvstore"
)

// Repository журнал слотов и бронирований.
// Состояние живёт в памяти, запись в хранилище выполняется явным вызовом Save.
// Проверка доступности слота и его блокировка при создании бронирования выполняются под одной блокировкой.
type Repository struct {
	store Store

	mu        sync.RWMutex
	slots     []domain.BookingSlot
	slotIndex map[domain.SlotID]int
	bookings  []domain.Booking

	saveMu sync.Mutex
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(store Store) *Repository {
	return &Repository{
		store:     store,
		slotIndex: make(map[domain.SlotID]int),
	}
}

// Load читает слоты и бронирования из хранилища.
// slotsFound=false означает, что слоты ещё ни разу не сохранялись (первый запуск).
func (r *Repository) Load(ctx context.Context) (slotsFound bool, err error) {
	var slots []domain.BookingSlot
	err = kvstore.GetJSON(ctx, r.store, KeySlots, &slots)
	switch {
	case errors.Is(err, kvstore.ErrNotFound):
		slotsFound = false
	case err != nil:
		return false, fmt.Errorf("%w: Load - slots: %v", ErrLoad, err)
	default:
		slotsFound = true
	}

	var bookings []domain.Booking
	err = kvstore.GetJSON(ctx, r.store, KeyBookings, &bookings)
	if err != nil && !errors.Is(err, kvstore.ErrNotFound) {
		return false, fmt.Errorf("%w: Load - bookings: %v", ErrLoad, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots = make([]domain.BookingSlot, 0, len(slots))
	r.slotIndex = make(map[domain.SlotID]int, len(slots))
	for _, s := range slots {
		if _, exists := r.slotIndex[s.ID]; exists {
			continue
		}
		r.slotIndex[s.ID] = len(r.slots)
		r.slots = append(r.slots, s)
	}
	r.bookings = append(make([]domain.Booking, 0, len(bookings)), bookings...)

	return slotsFound, nil
}

// Save записывает слоты и бронирования в хранилище
func (r *Repository) Save(ctx context.Context) error {
	r.saveMu.Lock()
	defer r.saveMu.Unlock()

	r.mu.RLock()
	slots := append([]domain.BookingSlot(nil), r.slots...)
	bookings := append([]domain.Booking(nil), r.bookings...)
	r.mu.RUnlock()

	if slots == nil {
		slots = []domain.BookingSlot{}
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}

	if err := kvstore.SetJSON(ctx, r.store, KeySlots, slots); err != nil {
		return fmt.Errorf("%w: Save - slots: %v", ErrSave, err)
	}
	if err := kvstore.SetJSON(ctx, r.store, KeyBookings, bookings); err != nil {
		return fmt.Errorf("%w: Save - bookings: %v", ErrSave, err)
	}

	return nil
}

// Slots возвращает копию всех слотов в порядке создания
func (r *Repository) Slots() []domain.BookingSlot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.BookingSlot(nil), r.slots...)
}

// AvailableSlots возвращает свободные слоты услуги на дату
func (r *Repository) AvailableSlots(date, serviceID string) []domain.BookingSlot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.AvailableSlots(r.slots, date, serviceID)
}

// GetSlot возвращает слот по ключу
func (r *Repository) GetSlot(id domain.SlotID) (domain.BookingSlot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.slotIndex[id]
	if !ok {
		return domain.BookingSlot{}, false
	}
	return r.slots[idx], true
}

// InsertSlots добавляет слоты, пропуская уже существующие ключи.
// Возвращает только реально добавленные слоты.
func (r *Repository) InsertSlots(slots []domain.BookingSlot) []domain.BookingSlot {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := make([]domain.BookingSlot, 0, len(slots))
	for _, s := range slots {
		if _, exists := r.slotIndex[s.ID]; exists {
			continue
		}
		r.slotIndex[s.ID] = len(r.slots)
		r.slots = append(r.slots, s)
		created = append(created, s)
	}
	return created
}

// Create сохраняет бронирование и помечает слот занятым.
// Если слота нет или он уже занят, состояние не меняется и возвращается ErrSlotNotAvailable.
func (r *Repository) Create(b domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.slotIndex[b.SlotID]
	if !ok || !r.slots[idx].IsAvailable {
		return ErrSlotNotAvailable
	}

	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			return ErrDuplicateBooking
		}
	}

	r.bookings = append(r.bookings, b)
	r.slots[idx].IsAvailable = false
	return nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(id string) (domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.bookings[i], nil
	}
	return domain.Booking{}, ErrBookingNotFound
}

// GetBySlotID возвращает активное бронирование слота, а если его нет - последнее по времени
func (r *Repository) GetBySlotID(slotID domain.SlotID) (domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	latest := -1
	for i := range r.bookings {
		if r.bookings[i].SlotID != slotID {
			continue
		}
		if r.bookings[i].IsActive() {
			return r.bookings[i], nil
		}
		if latest < 0 || !r.bookings[i].CreatedAt.Before(r.bookings[latest].CreatedAt) {
			latest = i
		}
	}

	if latest < 0 {
		return domain.Booking{}, ErrBookingNotFound
	}
	return r.bookings[latest], nil
}

// List возвращает копию всех бронирований в порядке создания
func (r *Repository) List() []domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Booking(nil), r.bookings...)
}

// UpdateStatus меняет статус, если текущий статус равен from.
// Слот не освобождается - для отмены используется Cancel.
func (r *Repository) UpdateStatus(id string, from, to domain.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrBookingNotFound
	}
	if r.bookings[i].Status != from {
		return ErrStatusConflict
	}

	r.bookings[i].Status = to
	return nil
}

// Cancel переводит бронирование в cancelled и освобождает его слот, если текущий статус равен from
func (r *Repository) Cancel(id string, from domain.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrBookingNotFound
	}
	if r.bookings[i].Status != from {
		return ErrStatusConflict
	}

	r.bookings[i].Status = domain.StatusCancelled
	if idx, ok := r.slotIndex[r.bookings[i].SlotID]; ok {
		r.slots[idx].IsAvailable = true
	}
	return nil
}

func (r *Repository) indexOf(id string) int {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			return i
		}
	}
	return -1
}
