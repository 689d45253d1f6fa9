package get_upcoming_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-ConsultService/internal/api/handlers"
)

// Handler обработчик получения предстоящих бронирований
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

// Handle обрабатывает GET /api/v1/admin/bookings/upcoming
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := h.service.GetUpcoming(ctx)
	if err != nil {
		h.logger.Error("GetUpcomingBookings: failed to load upcoming bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
