package complete_booking

import (
	"context"

	"github.com/m04kA/SMC-ConsultService/internal/service/bookings/models"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	Complete(ctx context.Context, id int64, req *models.CompleteBookingRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
