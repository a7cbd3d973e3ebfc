package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/internal/infra/kvstore"
	sessionRepo "github.com/m04kA/SPAuto-BookingService/internal/infra/storage/session"
	"github.com/m04kA/SPAuto-BookingService/pkg/logger"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

type loginCounter map[string]int

func (l loginCounter) IncLoginAttempt(result string) { l[result]++ }

const secret = "test-secret"

func newService(t *testing.T) (*Service, *sessionRepo.Repository, *clock, loginCounter) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	sessions := sessionRepo.NewRepository(kvstore.NewMemoryStore())
	require.NoError(t, sessions.Load(context.Background()))

	c := &clock{now: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)}
	counter := loginCounter{}
	svc := NewService(NewStaticCredentials("admin", string(hash)), sessions, counter, secret, time.Hour, logger.NewNop()).
		WithTimeProvider(c)
	return svc, sessions, c, counter
}

func TestLogin_Authenticate_Logout(t *testing.T) {
	ctx := context.Background()
	svc, sessions, c, counter := newService(t)

	res, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, domain.User{Username: "admin", Role: domain.RoleAdmin}, res.User)
	assert.Equal(t, c.now.Add(time.Hour), res.ExpiresAt)

	session, err := svc.Authenticate(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", session.User.Username)

	_, err = sessions.Get(session.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session.ID))
	_, err = svc.Authenticate(res.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// повторный выход не ошибка
	require.NoError(t, svc.Logout(ctx, session.ID))
	assert.Equal(t, 1, counter[LoginSuccess])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _, _, counter := newService(t)

	_, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(context.Background(), "root", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.Equal(t, 3, counter[LoginFailure])
}

func TestLogin_CancelledContext(t *testing.T) {
	svc, _, _, _ := newService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, "admin", "admin123")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAuthenticate_Expired(t *testing.T) {
	svc, _, c, _ := newService(t)

	res, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	c.now = c.now.Add(2 * time.Hour)
	_, err = svc.Authenticate(res.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticate_RejectsForeignTokens(t *testing.T) {
	svc, _, c, _ := newService(t)

	_, err := svc.Authenticate("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims := jwt.RegisteredClaims{ID: "s1", ExpiresAt: jwt.NewNumericDate(c.now.Add(time.Hour))}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)
	_, err = svc.Authenticate(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// корректная подпись, но сессии не существует
	orphan, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	_, err = svc.Authenticate(orphan)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// без exp токен не принимается
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{ID: "s1"}).SignedString([]byte(secret))
	require.NoError(t, err)
	_, err = svc.Authenticate(noExp)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogin_PurgesExpiredSessions(t *testing.T) {
	svc, sessions, c, _ := newService(t)

	sessions.Put(domain.Session{ID: "stale", ExpiresAt: c.now.Add(-time.Minute)})
	_, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	_, err = sessions.Get("stale")
	assert.ErrorIs(t, err, sessionRepo.ErrSessionNotFound)
}
