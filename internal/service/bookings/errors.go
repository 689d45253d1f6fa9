package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidTransition возвращается, когда операция недопустима из текущего статуса
	ErrInvalidTransition = errors.New("operation is not allowed for the current booking status")

	// ErrSlotTaken возвращается, когда целевой (date, time) слот уже занят
	ErrSlotTaken = errors.New("slot is already taken by an active booking")

	// ErrVersionConflict возвращается, когда запись была изменена параллельно
	ErrVersionConflict = errors.New("booking was modified by someone else, reload and retry")

	// ErrCannotDelete возвращается при попытке удалить неотменённое бронирование
	ErrCannotDelete = errors.New("only cancelled bookings can be deleted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
