package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда (date, time) слот уже занят активным бронированием
	// Маппится с нарушения частичного уникального индекса bookings_active_slot_uniq
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrVersionConflict возвращается при несовпадении версии записи (lost update)
	ErrVersionConflict = errors.New("booking.repository: booking was modified by someone else")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
