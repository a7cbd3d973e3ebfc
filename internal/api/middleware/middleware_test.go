package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/internal/service/auth"
	"github.com/m04kA/SPAuto-BookingService/pkg/logger"
)

type stubAuthenticator map[string]domain.Session

func (s stubAuthenticator) Authenticate(token string) (domain.Session, error) {
	if token == "broken" {
		return domain.Session{}, errors.New("store down")
	}
	session, ok := s[token]
	if !ok {
		return domain.Session{}, fmt.Errorf("%w: unknown", auth.ErrInvalidToken)
	}
	return session, nil
}

func protected() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := GetSession(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_, _ = w.Write([]byte(session.User.Username))
	})
}

func TestAdminAuth(t *testing.T) {
	authenticator := stubAuthenticator{
		"good":  {ID: "s1", User: domain.User{Username: "admin", Role: domain.RoleAdmin}},
		"guest": {ID: "s2", User: domain.User{Username: "guest", Role: "viewer"}},
	}
	h := AdminAuth(authenticator, logger.NewNop())(protected())

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{name: "no header", header: "", code: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", code: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer  ", code: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer nope", code: http.StatusUnauthorized},
		{name: "not admin", header: "Bearer guest", code: http.StatusForbidden},
		{name: "store failure", header: "Bearer broken", code: http.StatusInternalServerError},
		{name: "admin", header: "bearer good", code: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
			if tt.code == http.StatusOK {
				assert.Equal(t, "admin", rec.Body.String())
			}
		})
	}
}

type observed struct {
	method, route string
	status        int
}

type recordingMetrics struct {
	calls []observed
}

func (m *recordingMetrics) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	m.calls = append(m.calls, observed{method: method, route: route, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &recordingMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/admin/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings/b-42", nil))

	require.Len(t, m.calls, 1)
	assert.Equal(t, observed{
		method: http.MethodGet,
		route:  "/api/v1/admin/bookings/{bookingId}",
		status: http.StatusNotFound,
	}, m.calls[0])
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2, logger.NewNop())
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	h := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, call("10.0.0.1:5000"))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:5002"))

	// другой клиент имеет собственный лимит
	assert.Equal(t, http.StatusNoContent, call("10.0.0.2:5000"))

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusNoContent, call("10.0.0.1:5003"))

	now = now.Add(visitorTTL + time.Minute)
	call("10.0.0.3:5000")
	assert.Len(t, rl.visitors, 1)
}
