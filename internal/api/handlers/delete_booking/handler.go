package delete_booking

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
	msgBookingNotFound  = "бронирование не найдено"
	msgCannotDelete     = "удалить можно только отменённое бронирование"
)

// Handler обработчик удаления бронирования
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

// Handle обрабатывает DELETE /api/v1/admin/bookings/{bookingId}
// Удаление доступно только для отменённых бронирований, остальная история
// консультаций сохраняется для аудита
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Delete(ctx, bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, bookings.ErrCannotDelete):
			handlers.RespondBadRequest(w, msgCannotDelete)
		default:
			h.logger.Error("DeleteBooking: failed to delete booking %d: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	adminID, _ := middleware.AdminID(ctx)
	h.logger.Info("DeleteBooking: booking %d deleted by admin %s", bookingID, adminID)
	w.WriteHeader(http.StatusNoContent)
}
