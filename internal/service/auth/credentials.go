package auth

import (
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

// StaticCredentials хранит одного администратора из конфигурации.
// Пароль хранится только в виде bcrypt-хэша.
type StaticCredentials struct {
	username     string
	passwordHash string
}

// NewStaticCredentials создает хранилище с одним администратором
func NewStaticCredentials(username, passwordHash string) *StaticCredentials {
	return &StaticCredentials{username: username, passwordHash: passwordHash}
}

// Lookup реализует CredentialStore
func (c *StaticCredentials) Lookup(username string) (domain.User, string, error) {
	if username == "" || username != c.username {
		return domain.User{}, "", ErrUnknownUser
	}
	return domain.User{Username: c.username, Role: domain.RoleAdmin}, c.passwordHash, nil
}
