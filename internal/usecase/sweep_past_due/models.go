package sweep_past_due

import "github.com/m04kA/SMC-ConsultService/internal/domain"

// ScanResult результат сканирования на просроченные бронирования
type ScanResult struct {
	// PastDue просроченные бронирования в порядке загрузки (без пересортировки)
	PastDue []*domain.Booking
	// NeedsAttention true, если есть просроченные и флаг не был скрыт в этой сессии
	NeedsAttention bool
}

// BulkCompleteResult результат массового закрытия просроченных бронирований
// Исходы независимы: ошибка одного бронирования не откатывает остальные
type BulkCompleteResult struct {
	CompletedIDs []int64          `json:"completedIds"`
	Failed       []FailedComplete `json:"failed,omitempty"`
}

// FailedComplete бронирование, которое не удалось закрыть
type FailedComplete struct {
	BookingID int64  `json:"bookingId"`
	Error     string `json:"error"`
}
