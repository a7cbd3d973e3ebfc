package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotNotAvailable возвращается, когда слот отсутствует или уже занят
	ErrSlotNotAvailable = errors.New("booking.repository: slot not available")

	// ErrStatusConflict возвращается, когда статус бронирования изменился с момента чтения
	ErrStatusConflict = errors.New("booking.repository: booking status changed concurrently")

	// ErrDuplicateBooking возвращается при повторном использовании ID бронирования
	ErrDuplicateBooking = errors.New("booking.repository: duplicate booking id")

	// ErrLoad возвращается при ошибке чтения состояния из хранилища
	ErrLoad = errors.New("booking.repository: failed to load state")

	// ErrSave возвращается при ошибке записи состояния в хранилище
	ErrSave = errors.New("booking.repository: failed to save state")
)
