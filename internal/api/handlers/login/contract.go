package login

import (
	"context"

	"github.com/m04kA/SPAuto-BookingService/internal/service/auth"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*auth.LoginResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
