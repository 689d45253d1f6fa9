package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConsultService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-ConsultService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgInvalidStatus      = "некорректный начальный статус бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger

	// allowInitialStatus true на админском маршруте прямого создания
	allowInitialStatus bool
}

// NewHandler создает handler клиентской формы записи (статус всегда pending)
func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// NewAdminHandler создает handler админского прямого создания
// (начальный статус выбирает администратор, по умолчанию pending)
func NewAdminHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:            useCase,
		logger:             logger,
		allowInitialStatus: true,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(h.allowInitialStatus))
	if err != nil {
		if fieldErrs, ok := handlers.FieldErrorsFrom(err); ok {
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondValidationError(w, fieldErrs)
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidStatus):
			h.logger.Warn("POST /bookings - Invalid initial status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d", result.Booking.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
