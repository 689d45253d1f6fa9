package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ConsultService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ConsultService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ConsultService/internal/integrations/reviewservice"
	"github.com/m04kA/SMC-ConsultService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ConsultService/pkg/ptr"
	"github.com/m04kA/SMC-ConsultService/pkg/types"
)

// Service управляет жизненным циклом бронирования: все изменения статуса
// проходят через операции этого сервиса и проверяются по таблице переходов
type Service struct {
	bookingRepo  BookingRepository
	reviewClient ReviewServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	reviewClient ReviewServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		reviewClient: reviewClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List получает список бронирований с фильтрацией по статусу и периоду
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, status=%v", req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetUpcoming получает бронирования с датой не раньше сегодняшней
func (s *Service) GetUpcoming(ctx context.Context) (*models.BookingListResponse, error) {
	today := s.timeProvider.Now()
	s.logger.Info("GetUpcoming: fetching bookings from %s", today.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.GetUpcoming(ctx, today)
	if err != nil {
		s.logger.Error("GetUpcoming: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetUpcoming - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Confirm подтверждает бронирование (pending -> confirmed)
func (s *Service) Confirm(ctx context.Context, id int64) error {
	s.logger.Info("Confirm: confirming booking id=%d", id)

	booking, err := s.getBooking(ctx, "Confirm", id)
	if err != nil {
		return err
	}

	nextStatus, ok := domain.NextStatus(booking.Status, domain.OpConfirm)
	if !ok {
		s.logger.Warn("Confirm: booking id=%d cannot be confirmed, status=%s", id, booking.Status)
		return fmt.Errorf("%w: cannot confirm booking in status %q", ErrInvalidTransition, booking.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, nextStatus); err != nil {
		return s.mapRepoError("Confirm", id, err)
	}

	s.logger.Info("Confirm: successfully confirmed booking id=%d", id)
	return nil
}

// Cancel отменяет бронирование из любого нетерминального статуса
// Причина опциональна
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	booking, err := s.getBooking(ctx, "Cancel", id)
	if err != nil {
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", id, booking.Status)
		return fmt.Errorf("%w: cannot cancel booking in status %q", ErrInvalidTransition, booking.Status)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxCancellationReasonLength {
		return domain.FieldErrors{"reason": "cancellation reason is too long"}
	}

	if err := s.bookingRepo.Cancel(ctx, id, req.Reason); err != nil {
		return s.mapRepoError("Cancel", id, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d, reason=%q", id, ptr.Deref(req.Reason))
	return nil
}

// Reschedule переносит бронирование на новые дату и время
// Требует новую дату, новое время (по слот-сетке) и непустую причину.
// Исходный слот фиксируется при первом переносе и далее не перезаписывается
func (s *Service) Reschedule(ctx context.Context, id int64, req *models.RescheduleBookingRequest) error {
	s.logger.Info("Reschedule: rescheduling booking id=%d to %s %s", id, req.NewDate, req.NewTime)

	newDate, newTime, fieldErrs := validateRescheduleInput(req)
	if fieldErrs != nil {
		s.logger.Warn("Reschedule: validation failed for booking id=%d: %v", id, fieldErrs)
		return fieldErrs
	}

	booking, err := s.getBooking(ctx, "Reschedule", id)
	if err != nil {
		return err
	}

	if !booking.CanBeRescheduled() {
		s.logger.Warn("Reschedule: booking id=%d cannot be rescheduled, status=%s", id, booking.Status)
		return fmt.Errorf("%w: cannot reschedule booking in status %q", ErrInvalidTransition, booking.Status)
	}

	// Предварительная проверка занятости целевого слота. Жёсткую гарантию
	// даёт частичный уникальный индекс в БД, здесь - дружелюбная ошибка
	if err := s.checkSlotFree(ctx, newDate, newTime, booking.ID); err != nil {
		return err
	}

	if err := s.bookingRepo.Reschedule(ctx, id, newDate, newTime, req.Reason); err != nil {
		return s.mapRepoError("Reschedule", id, err)
	}

	s.logger.Info("Reschedule: successfully rescheduled booking id=%d to %s %s",
		id, newDate.Format(domain.DateFormat), newTime)
	return nil
}

// Complete завершает бронирование (confirmed/rescheduled -> completed)
// Требует непустое заключение; после завершения уведомляет ReviewService,
// что клиент может оставить отзыв. Недоступность ReviewService не откатывает переход
func (s *Service) Complete(ctx context.Context, id int64, req *models.CompleteBookingRequest) error {
	s.logger.Info("Complete: completing booking id=%d", id)

	conclusion := strings.TrimSpace(req.Conclusion)
	if conclusion == "" {
		s.logger.Warn("Complete: empty conclusion for booking id=%d", id)
		return domain.FieldErrors{"conclusion": "conclusion is required to complete a booking"}
	}
	if len(conclusion) > domain.MaxConclusionLength {
		return domain.FieldErrors{"conclusion": "conclusion is too long"}
	}

	booking, err := s.getBooking(ctx, "Complete", id)
	if err != nil {
		return err
	}

	if !booking.CanBeCompleted() {
		s.logger.Warn("Complete: booking id=%d cannot be completed, status=%s", id, booking.Status)
		return fmt.Errorf("%w: cannot complete booking in status %q", ErrInvalidTransition, booking.Status)
	}

	if err := s.bookingRepo.Complete(ctx, id, conclusion); err != nil {
		return s.mapRepoError("Complete", id, err)
	}

	s.notifyCanReview(ctx, booking)

	s.logger.Info("Complete: successfully completed booking id=%d", id)
	return nil
}

// Update выполняет полное редактирование записи с проверкой всех обязательных
// полей и optimistic concurrency control по версии
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%d, version=%d", id, req.Version)

	updated, fieldErrs := buildUpdatedBooking(id, req)
	if fieldErrs != nil {
		s.logger.Warn("Update: validation failed for booking id=%d: %v", id, fieldErrs)
		return nil, fieldErrs
	}

	result, err := s.bookingRepo.Update(ctx, updated, req.Version)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("Update: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrVersionConflict):
			s.logger.Warn("Update: version conflict for booking id=%d, expected version=%d", id, req.Version)
			return nil, ErrVersionConflict
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			s.logger.Warn("Update: target slot taken for booking id=%d", id)
			return nil, ErrSlotTaken
		default:
			s.logger.Error("Update: repository error for booking id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated booking id=%d, new version=%d", id, result.Version)
	return models.FromDomainBooking(result), nil
}

// Delete физически удаляет бронирование
// Разрешено только для отменённых бронирований: удаление активной или
// завершённой записи ломает целостность истории
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	booking, err := s.getBooking(ctx, "Delete", id)
	if err != nil {
		return err
	}

	if booking.Status != domain.StatusCancelled {
		s.logger.Warn("Delete: booking id=%d is not cancelled, status=%s", id, booking.Status)
		return ErrCannotDelete
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		s.logger.Warn("%s: booking id=%d not found during update", op, id)
		return ErrBookingNotFound
	case errors.Is(err, bookingRepo.ErrSlotTaken):
		s.logger.Warn("%s: target slot taken for booking id=%d", op, id)
		return ErrSlotTaken
	default:
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

func (s *Service) checkSlotFree(ctx context.Context, date time.Time, slotTime types.TimeString, selfID int64) error {
	bookings, err := s.bookingRepo.GetActiveByDate(ctx, date)
	if err != nil {
		s.logger.Error("checkSlotFree: repository error: %v", err)
		return fmt.Errorf("%w: checkSlotFree - repository error: %v", ErrInternal, err)
	}

	for _, b := range bookings {
		if b.ID != selfID && b.Time == slotTime {
			s.logger.Warn("checkSlotFree: slot %s %s taken by booking id=%d",
				date.Format(domain.DateFormat), slotTime, b.ID)
			return ErrSlotTaken
		}
	}
	return nil
}

func (s *Service) notifyCanReview(ctx context.Context, booking *domain.Booking) {
	eligibility := reviewservice.ReviewEligibility{
		BookingID:    booking.ID,
		Company:      booking.Company,
		ContactEmail: booking.ContactEmail,
		CanReview:    true,
	}

	if err := s.reviewClient.NotifyCanReview(ctx, eligibility); err != nil {
		s.logger.Error("notifyCanReview: failed to notify review service for booking id=%d: %v",
			booking.ID, err)
	}
}

// validateRescheduleInput валидирует собственные входные данные операции переноса
// Полная валидация записи здесь не выполняется
func validateRescheduleInput(req *models.RescheduleBookingRequest) (time.Time, types.TimeString, domain.FieldErrors) {
	errs := domain.FieldErrors{}

	var newDate time.Time
	if strings.TrimSpace(req.NewDate) == "" {
		errs["newDate"] = "new date is required"
	} else {
		parsed, err := time.Parse(domain.DateFormat, req.NewDate)
		if err != nil {
			errs["newDate"] = "new date must be in YYYY-MM-DD format"
		} else {
			newDate = parsed
		}
	}

	var newTime types.TimeString
	if strings.TrimSpace(req.NewTime) == "" {
		errs["newTime"] = "new time is required"
	} else {
		parsed, err := types.NewTimeStringFromString(req.NewTime)
		switch {
		case err != nil:
			errs["newTime"] = "new time must be in HH:MM format"
		case !domain.IsOnSlotGrid(parsed):
			errs["newTime"] = "new time must align to the 08:00-17:00 half-hour slot grid"
		default:
			newTime = parsed
		}
	}

	if strings.TrimSpace(req.Reason) == "" {
		errs["reason"] = "reschedule reason is required"
	} else if len(req.Reason) > domain.MaxRescheduleReasonLength {
		errs["reason"] = "reschedule reason is too long"
	}

	if len(errs) > 0 {
		return time.Time{}, "", errs
	}
	return newDate, newTime, nil
}

// buildUpdatedBooking парсит и валидирует полное редактирование записи
func buildUpdatedBooking(id int64, req *models.UpdateBookingRequest) (*domain.Booking, domain.FieldErrors) {
	errs := domain.FieldErrors{}

	var date time.Time
	if strings.TrimSpace(req.Date) != "" {
		parsed, err := time.Parse(domain.DateFormat, req.Date)
		if err != nil {
			errs["date"] = "date must be in YYYY-MM-DD format"
		} else {
			date = parsed
		}
	}

	status := domain.BookingStatus(req.Status)
	if !status.IsValid() {
		errs["status"] = "unknown booking status"
	}

	booking := &domain.Booking{
		ID:             id,
		Date:           date,
		Time:           types.TimeString(req.Time),
		Company:        req.Company,
		ContactName:    req.ContactName,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		Purpose:        req.Purpose,
		Location:       req.Location,
		Product:        req.Product,
		AdditionalInfo: req.AdditionalInfo,
		Status:         status,
	}

	if fieldErrs := domain.ValidateBookingFields(booking); fieldErrs != nil {
		for field, msg := range fieldErrs {
			if _, exists := errs[field]; !exists {
				errs[field] = msg
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return booking, nil
}
