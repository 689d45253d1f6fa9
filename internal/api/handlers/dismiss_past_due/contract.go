package dismiss_past_due

// SweepUseCase интерфейс use case просроченных бронирований
type SweepUseCase interface {
	Dismiss()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
