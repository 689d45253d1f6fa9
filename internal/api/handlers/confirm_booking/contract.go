package confirm_booking

import "context"

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	Confirm(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
