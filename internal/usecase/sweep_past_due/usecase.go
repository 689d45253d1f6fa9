package sweep_past_due

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-ConsultService/internal/domain"
)

// UseCase выявляет бронирования, дата которых прошла, а статус остался
// нетерминальным, и предлагает массовое закрытие
//
// Сканирование само по себе ничего не изменяет. Скрытие флага (Dismiss)
// действует до следующей полной загрузки админского списка (StartSession).
// Фонового планировщика нет, все операции вызываются из request/response
// потоков, поэтому состояние сессии защищено мьютексом
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger

	mu        sync.Mutex
	dismissed bool
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Scan размечает просроченные бронирования в загруженном списке
// Порядок входа сохраняется. Скрытый в текущей сессии флаг не поднимается
// повторно: NeedsAttention при этом остаётся false, сам список - нет
func (uc *UseCase) Scan(bookings []*domain.Booking) *ScanResult {
	now := uc.timeProvider.Now()

	pastDue := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if b.IsPastDue(now) {
			pastDue = append(pastDue, b)
		}
	}

	uc.mu.Lock()
	dismissed := uc.dismissed
	uc.mu.Unlock()

	uc.logger.Info("SweepPastDue: scanned %d bookings, %d past due, dismissed=%t",
		len(bookings), len(pastDue), dismissed)

	return &ScanResult{
		PastDue:        pastDue,
		NeedsAttention: len(pastDue) > 0 && !dismissed,
	}
}

// StartSession отмечает новую полную загрузку данных админки и снимает
// скрытие флага, сделанное в прошлой сессии
func (uc *UseCase) StartSession() {
	uc.mu.Lock()
	uc.dismissed = false
	uc.mu.Unlock()
}

// Dismiss скрывает флаг "needs attention" до следующей полной загрузки
// Данные не изменяются
func (uc *UseCase) Dismiss() {
	uc.logger.Info("SweepPastDue: past due flag dismissed for current session")
	uc.mu.Lock()
	uc.dismissed = true
	uc.mu.Unlock()
}

// IsDismissed возвращает true, если флаг скрыт в текущей сессии
func (uc *UseCase) IsDismissed() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.dismissed
}

// LoadPastDue загружает просроченные бронирования из хранилища
func (uc *UseCase) LoadPastDue(ctx context.Context) ([]*domain.Booking, error) {
	now := uc.timeProvider.Now()

	pastDue, err := uc.bookingRepo.GetPastDue(ctx, now)
	if err != nil {
		uc.logger.Error("SweepPastDue: failed to load past due bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to load past due bookings: %v", ErrInternal, err)
	}

	return pastDue, nil
}

// BulkComplete закрывает каждое просроченное бронирование с фиксированным
// системным заключением. Бронирования обрабатываются по одному; ошибка
// одного не останавливает цикл и не откатывает уже закрытые - админ
// повторяет сканирование, чтобы увидеть оставшиеся
//
// Массовое закрытие - административная зачистка: оно переводит в completed
// и pending-бронирования, минуя ограничение ручного Complete
// (confirmed/rescheduled), поскольку просроченный pending иначе застревает
// навсегда
func (uc *UseCase) BulkComplete(ctx context.Context) (*BulkCompleteResult, error) {
	pastDue, err := uc.LoadPastDue(ctx)
	if err != nil {
		return nil, err
	}

	result := &BulkCompleteResult{
		CompletedIDs: make([]int64, 0, len(pastDue)),
	}

	for _, b := range pastDue {
		if err := uc.bookingRepo.Complete(ctx, b.ID, domain.AutoCompleteConclusion); err != nil {
			uc.logger.Error("SweepPastDue: failed to complete booking id=%d: %v", b.ID, err)
			result.Failed = append(result.Failed, FailedComplete{
				BookingID: b.ID,
				Error:     err.Error(),
			})
			continue
		}
		result.CompletedIDs = append(result.CompletedIDs, b.ID)
	}

	uc.logger.Info("SweepPastDue: bulk complete finished, completed=%d, failed=%d",
		len(result.CompletedIDs), len(result.Failed))

	return result, nil
}
