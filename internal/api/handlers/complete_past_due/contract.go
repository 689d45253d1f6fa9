package complete_past_due

import (
	"context"

	"github.com/m04kA/SMC-ConsultService/internal/usecase/sweep_past_due"
)

// SweepUseCase интерфейс use case просроченных бронирований
type SweepUseCase interface {
	BulkComplete(ctx context.Context) (*sweep_past_due.BulkCompleteResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
