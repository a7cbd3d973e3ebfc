package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/internal/infra/kvstore"
)

// Repository хранит активные сессии администраторов по ID сессии
type Repository struct {
	store Store

	mu       sync.RWMutex
	sessions map[string]domain.Session

	saveMu sync.Mutex
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(store Store) *Repository {
	return &Repository{
		store:    store,
		sessions: make(map[string]domain.Session),
	}
}

// Load читает сессии из хранилища
func (r *Repository) Load(ctx context.Context) error {
	sessions := make(map[string]domain.Session)
	err := kvstore.GetJSON(ctx, r.store, KeySessions, &sessions)
	if err != nil && !errors.Is(err, kvstore.ErrNotFound) {
		return fmt.Errorf("%w: Load - sessions: %v", ErrLoad, err)
	}

	r.mu.Lock()
	r.sessions = sessions
	r.mu.Unlock()

	return nil
}

// Save записывает сессии в хранилище
func (r *Repository) Save(ctx context.Context) error {
	r.saveMu.Lock()
	defer r.saveMu.Unlock()

	r.mu.RLock()
	sessions := make(map[string]domain.Session, len(r.sessions))
	for id, s := range r.sessions {
		sessions[id] = s
	}
	r.mu.RUnlock()

	if err := kvstore.SetJSON(ctx, r.store, KeySessions, sessions); err != nil {
		return fmt.Errorf("%w: Save - sessions: %v", ErrSave, err)
	}
	return nil
}

// Put сохраняет или заменяет сессию
func (r *Repository) Put(s domain.Session) {
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
}

// Get возвращает сессию по ID
func (r *Repository) Get(id string) (domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return domain.Session{}, ErrSessionNotFound
	}
	return s, nil
}

// Delete удаляет сессию. Возвращает false, если сессии не было.
func (r *Repository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

// PurgeExpired удаляет истёкшие сессии и возвращает их количество
func (r *Repository) PurgeExpired(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.IsExpired(now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
