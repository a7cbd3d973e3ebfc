package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/internal/infra/kvstore"
)

func TestRepository_PutGetDelete(t *testing.T) {
	repo := NewRepository(kvstore.NewMemoryStore())
	require.NoError(t, repo.Load(context.Background()))

	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	repo.Put(domain.Session{
		ID:        "s1",
		User:      domain.User{Username: "admin", Role: domain.RoleAdmin},
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	})

	got, err := repo.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, "admin", got.User.Username)

	assert.True(t, repo.Delete("s1"))
	assert.False(t, repo.Delete("s1"))
	_, err = repo.Get("s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRepository_SaveAndReload(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	repo := NewRepository(store)
	require.NoError(t, repo.Load(ctx))
	repo.Put(domain.Session{ID: "s1", User: domain.User{Username: "admin"}, ExpiresAt: now.Add(time.Hour)})
	require.NoError(t, repo.Save(ctx))

	reloaded := NewRepository(store)
	require.NoError(t, reloaded.Load(ctx))
	got, err := reloaded.Get("s1")
	require.NoError(t, err)
	assert.True(t, now.Add(time.Hour).Equal(got.ExpiresAt))
}

func TestRepository_PurgeExpired(t *testing.T) {
	repo := NewRepository(kvstore.NewMemoryStore())
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	repo.Put(domain.Session{ID: "old", ExpiresAt: now.Add(-time.Minute)})
	repo.Put(domain.Session{ID: "fresh", ExpiresAt: now.Add(time.Minute)})

	assert.Equal(t, 1, repo.PurgeExpired(now))
	_, err := repo.Get("old")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = repo.Get("fresh")
	assert.NoError(t, err)
}

func TestRepository_LoadCorrupted(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeySessions, []byte("[")))

	assert.ErrorIs(t, NewRepository(store).Load(ctx), ErrLoad)
}
