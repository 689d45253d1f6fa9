package complete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConsultService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultService/internal/service/bookings"
)

const (
	msgInvalidBookingID  = "некорректный идентификатор бронирования"
	msgInvalidBody       = "некорректное тело запроса"
	msgBookingNotFound   = "бронирование не найдено"
	msgInvalidTransition = "завершение недоступно для текущего статуса бронирования"
)

// Handler обработчик завершения бронирования
type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle обрабатывает PATCH /api/v1/admin/bookings/{bookingId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req CompleteBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("CompleteBooking: failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.Complete(ctx, bookingID, req.ToServiceRequest()); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, bookings.ErrInvalidTransition):
			handlers.RespondBadRequest(w, msgInvalidTransition)
		default:
			if fieldErrs, ok := handlers.FieldErrorsFrom(err); ok {
				handlers.RespondValidationError(w, fieldErrs)
				return
			}
			h.logger.Error("CompleteBooking: failed to complete booking %d: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("CompleteBooking: booking %d completed", bookingID)
	w.WriteHeader(http.StatusNoContent)
}
