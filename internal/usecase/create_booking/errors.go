package create_booking

import "errors"

var (
	// ErrSlotNotAvailable возвращается, когда (date, time) слот уже занят
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInvalidStatus возвращается при недопустимом начальном статусе
	ErrInvalidStatus = errors.New("invalid initial booking status")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
