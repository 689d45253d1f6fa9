package get_past_due

import (
	"context"

	"github.com/m04kA/SMC-ConsultService/internal/domain"
	"github.com/m04kA/SMC-ConsultService/internal/usecase/sweep_past_due"
)

// SweepUseCase интерфейс use case просроченных бронирований
type SweepUseCase interface {
	LoadPastDue(ctx context.Context) ([]*domain.Booking, error)
	Scan(bookings []*domain.Booking) *sweep_past_due.ScanResult
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
