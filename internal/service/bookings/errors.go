package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrSlotUnavailable возвращается, когда слот не существует или уже занят
	ErrSlotUnavailable = errors.New("bookings: slot is not available")

	// ErrConcurrentUpdate возвращается, когда статус бронирования меняется параллельно
	ErrConcurrentUpdate = errors.New("bookings: booking was modified concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
