package list_bookings

import (
	"context"

	"github.com/m04kA/SMC-ConsultService/internal/service/bookings/models"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error)
}

// SweepSession интерфейс сессии просроченных бронирований
// Полная загрузка списка открывает новую сессию
type SweepSession interface {
	StartSession()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
