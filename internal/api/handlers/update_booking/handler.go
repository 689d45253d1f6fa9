package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConsultService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultService/internal/api/middleware"
	"github.com/m04kA/SMC-ConsultService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный идентификатор бронирования"
	msgInvalidBody      = "некорректное тело запроса"
	msgBookingNotFound  = "бронирование не найдено"
	msgVersionConflict  = "запись была изменена другим администратором, обновите данные"
	msgSlotTaken        = "выбранный слот уже занят"
)

// Handler обработчик полного редактирования бронирования
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

// Handle обрабатывает PUT /api/v1/admin/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("UpdateBooking: failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.service.Update(ctx, bookingID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, bookings.ErrVersionConflict):
			handlers.RespondConflict(w, msgVersionConflict)
		case errors.Is(err, bookings.ErrSlotTaken):
			handlers.RespondConflict(w, msgSlotTaken)
		default:
			if fieldErrs, ok := handlers.FieldErrorsFrom(err); ok {
				handlers.RespondValidationError(w, fieldErrs)
				return
			}
			h.logger.Error("UpdateBooking: failed to update booking %d: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	adminID, _ := middleware.AdminID(ctx)
	h.logger.Info("UpdateBooking: booking %d updated by admin %s, version=%d", bookingID, adminID, resp.Version)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
