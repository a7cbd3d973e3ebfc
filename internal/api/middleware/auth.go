package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/internal/service/auth"
)

type contextKey string

const sessionKey contextKey = "session"

const (
	msgMissingToken = "missing bearer token"
	msgInvalidToken = "invalid or expired token"
	msgForbidden    = "admin access required"
)

// AdminAuth пропускает только запросы с действующим токеном администратора.
// Сессия кладется в контекст запроса.
func AdminAuth(authenticator Authenticator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				logger.Warn("AdminAuth: %s %s - missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			session, err := authenticator.Authenticate(token)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidToken) {
					logger.Warn("AdminAuth: %s %s - rejected token: %v", r.Method, r.URL.Path, err)
					handlers.RespondUnauthorized(w, msgInvalidToken)
					return
				}
				logger.Error("AdminAuth: %s %s - authentication failed: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			if session.User.Role != domain.RoleAdmin {
				logger.Warn("AdminAuth: %s %s - user=%s is not an admin", r.Method, r.URL.Path, session.User.Username)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession извлекает сессию администратора из контекста
func GetSession(ctx context.Context) (domain.Session, bool) {
	session, ok := ctx.Value(sessionKey).(domain.Session)
	return session, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
