package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConsultService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ConsultService/internal/infra/storage/booking"
)

// UseCase use case для создания бронирования консультации
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Занятость слота проверяется в сериализуемой транзакции с блокировкой строк
// даты; частичный уникальный индекс в БД закрывает оставшееся окно гонки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: company=%q, date=%s, time=%s",
		req.Company, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных (field-keyed ошибки для подсветки полей формы)
	booking := req.toDomain()
	if fieldErrs := domain.ValidateBookingFields(booking); fieldErrs != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", fieldErrs)
		return nil, fieldErrs
	}

	// 2. Начальный статус должен быть нетерминальным
	if booking.Status.IsTerminal() {
		uc.logger.Warn("CreateBooking: terminal initial status %q rejected", booking.Status)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, booking.Status)
	}

	// 3. Проверка занятости и вставка в одной сериализуемой транзакции
	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		active, err := uc.bookingRepo.GetActiveByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		for _, b := range active {
			if b.Time == req.Time {
				uc.logger.Warn("CreateBooking: slot %s %s taken by booking id=%d",
					req.Date.Format(domain.DateFormat), req.Time, b.ID)
				return ErrSlotNotAvailable
			}
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, status=%s", result.ID, result.Status)

	return &Response{Booking: result}, nil
}
