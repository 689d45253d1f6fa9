package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ConsultService/internal/domain"
)

// UseCase use case для получения слот-листа на дату
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute возвращает все слоты фиксированной сетки 08:00-17:00 на дату,
// размеченные занятостью. Чтение без побочных эффектов.
//
// Fail-open: при ошибке хранилища возвращаются все слоты как свободные,
// а не ошибка - неработающая форма записи хуже, чем слишком
// разрешительный слот-лист. Ответ помечается Degraded, "all available"
// в этом режиме не является гарантией данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	bookings, err := uc.bookingRepo.GetActiveByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings, serving fail-open default: %v", err)
		return &Response{
			Date:     req.Date,
			Slots:    allAvailableSlots(),
			Degraded: true,
		}, nil
	}

	slots := buildSlots(bookings)

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s, occupied=%d",
		len(slots), req.Date.Format(domain.DateFormat), countOccupied(slots))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}

func countOccupied(slots []domain.Slot) int {
	count := 0
	for _, slot := range slots {
		if !slot.Available {
			count++
		}
	}
	return count
}
