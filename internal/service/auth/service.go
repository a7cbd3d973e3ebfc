package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	sessionRepo "github.com/m04kA/SPAuto-BookingService/internal/infra/storage/session"
)

// Результаты попыток входа для метрик
const (
	LoginSuccess = "success"
	LoginFailure = "failure"
)

// LoginResult выданный токен и данные сессии
type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      domain.User `json:"user"`
}

// Service аутентификация администратора: bcrypt + серверные сессии + HS256 JWT
type Service struct {
	credentials  CredentialStore
	sessions     SessionRepository
	metrics      Metrics
	secret       []byte
	ttl          time.Duration
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	credentials CredentialStore,
	sessions SessionRepository,
	metrics Metrics,
	secret string,
	ttl time.Duration,
	logger Logger,
) *Service {
	return &Service{
		credentials:  credentials,
		sessions:     sessions,
		metrics:      metrics,
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Login проверяет пароль, создаёт сессию и выдаёт токен с ID сессии в jti
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	user, hash, err := s.credentials.Lookup(username)
	if err != nil {
		s.metrics.IncLoginAttempt(LoginFailure)
		if errors.Is(err, ErrUnknownUser) {
			s.logger.Warn("Login: unknown user=%q", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: credential lookup failed for user=%q: %v", username, err)
		return nil, fmt.Errorf("%w: Login - lookup: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		s.metrics.IncLoginAttempt(LoginFailure)
		s.logger.Warn("Login: wrong password for user=%q", username)
		return nil, ErrInvalidCredentials
	}

	now := s.timeProvider.Now()
	session := domain.Session{
		ID:        s.newID(),
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if purged := s.sessions.PurgeExpired(now); purged > 0 {
		s.logger.Info("Login: purged %d expired sessions", purged)
	}
	s.sessions.Put(session)
	if err := s.sessions.Save(ctx); err != nil {
		s.logger.Error("Login: failed to persist session for user=%q: %v", username, err)
		return nil, fmt.Errorf("%w: Login - save: %v", ErrInternal, err)
	}

	token, err := s.sign(session)
	if err != nil {
		s.logger.Error("Login: failed to sign token for user=%q: %v", username, err)
		return nil, fmt.Errorf("%w: Login - sign: %v", ErrInternal, err)
	}

	s.metrics.IncLoginAttempt(LoginSuccess)
	s.logger.Info("Login: user=%q logged in, session=%s", username, session.ID)
	return &LoginResult{Token: token, ExpiresAt: session.ExpiresAt, User: user}, nil
}

// Authenticate проверяет подпись и срок токена и что сессия ещё существует
func (s *Service) Authenticate(token string) (domain.Session, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.timeProvider.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return domain.Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	session, err := s.sessions.Get(claims.ID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return domain.Session{}, fmt.Errorf("%w: session revoked", ErrInvalidToken)
		}
		return domain.Session{}, fmt.Errorf("%w: Authenticate - session lookup: %v", ErrInternal, err)
	}
	if session.IsExpired(s.timeProvider.Now()) {
		return domain.Session{}, fmt.Errorf("%w: session expired", ErrInvalidToken)
	}

	return session, nil
}

// Logout удаляет сессию. Повторный выход не считается ошибкой.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if !s.sessions.Delete(sessionID) {
		s.logger.Warn("Logout: session=%s not found", sessionID)
		return nil
	}
	if err := s.sessions.Save(ctx); err != nil {
		s.logger.Error("Logout: failed to persist sessions: %v", err)
		return fmt.Errorf("%w: Logout - save: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: session=%s closed", sessionID)
	return nil
}

func (s *Service) sign(session domain.Session) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        session.ID,
		Subject:   session.User.Username,
		IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
