package slots

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате (ожидается YYYY-MM-DD)
	ErrInvalidDate = errors.New("slots: invalid date")

	// ErrInvalidTimeRange возвращается, если время некорректно или начало не раньше конца
	ErrInvalidTimeRange = errors.New("slots: invalid time range")

	// ErrInvalidInterval возвращается при неположительном интервале
	ErrInvalidInterval = errors.New("slots: invalid interval")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots: internal error")
)
