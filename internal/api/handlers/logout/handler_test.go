package logout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SPAuto-BookingService/internal/api/middleware"
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/internal/service/auth"
	"github.com/m04kA/SPAuto-BookingService/pkg/logger"
)

type sessions map[string]domain.Session

func (s sessions) Authenticate(token string) (domain.Session, error) {
	session, ok := s[token]
	if !ok {
		return domain.Session{}, auth.ErrInvalidToken
	}
	return session, nil
}

func (s sessions) Logout(_ context.Context, sessionID string) error {
	for token, session := range s {
		if session.ID == sessionID {
			delete(s, token)
		}
	}
	return nil
}

func TestHandle_RevokesSession(t *testing.T) {
	store := sessions{
		"t1": {ID: "s1", User: domain.User{Username: "admin", Role: domain.RoleAdmin}},
	}
	h := middleware.AdminAuth(store, logger.NewNop())(http.HandlerFunc(NewHandler(store, logger.NewNop()).Handle))

	call := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer t1")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, call())
	assert.Empty(t, store)
	assert.Equal(t, http.StatusUnauthorized, call())
}

func TestHandle_NoSession(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(sessions{}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
