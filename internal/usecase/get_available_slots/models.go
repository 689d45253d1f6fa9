package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ConsultService/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	Date time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со слот-листом
type Response struct {
	Date     time.Time     // Дата, на которую запрашивались слоты
	Slots    []domain.Slot // Все 19 слотов сетки в порядке следования
	Degraded bool          // true, если хранилище было недоступно и слоты отданы fail-open
}
