package get_available_slots

import "errors"

var (
	// ErrBookingsClosed возвращается, когда прием бронирований выключен
	ErrBookingsClosed = errors.New("get_available_slots: bookings are currently closed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
