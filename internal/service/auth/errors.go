package auth

import "errors"

var (
	// ErrUnknownUser возвращается хранилищем учётных данных для неизвестного логина
	ErrUnknownUser = errors.New("auth: unknown user")

	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken возвращается для неверного, просроченного или отозванного токена
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
