package create_booking

import "errors"

var (
	// ErrBookingsClosed возвращается, когда глобальный тумблер приема
	// бронирований выключен; до хранилища бронирований запрос не доходит
	ErrBookingsClosed = errors.New("create_booking: bookings are currently closed")

	// ErrInvalidInput возвращается при некорректных входных данных
	// (обязательные поля клиента, форма email)
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается, когда дата бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда время не лежит на сетке
	// слотов расписания (не тот день недели, вне окна, не кратно шагу)
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook возвращается, когда до начала слота осталось
	// меньше lead time
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotTaken возвращается, когда пара (дата, слот) уже занята
	ErrSlotTaken = errors.New("create_booking: slot already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
