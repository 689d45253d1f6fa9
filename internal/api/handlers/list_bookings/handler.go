package list_bookings

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-ConsultService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultService/internal/domain"
	"github.com/m04kA/SMC-ConsultService/internal/service/bookings/models"
)

const (
	msgInvalidDateFrom = "некорректный формат dateFrom, ожидается YYYY-MM-DD"
	msgInvalidDateTo   = "некорректный формат dateTo, ожидается YYYY-MM-DD"
)

type Handler struct {
	service BookingService
	sweep   SweepSession
	logger  Logger
}

func NewHandler(service BookingService, sweep SweepSession, logger Logger) *Handler {
	return &Handler{
		service: service,
		sweep:   sweep,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: status, dateFrom, dateTo (все опциональны)
// Успешная загрузка списка открывает новую сессию просроченных: скрытие
// флага "needs attention", сделанное ранее, снимается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBookingsRequest{}
	query := r.URL.Query()

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if dateFromStr := query.Get("dateFrom"); dateFromStr != "" {
		dateFrom, err := time.Parse(domain.DateFormat, dateFromStr)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid dateFrom: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateFrom)
			return
		}
		req.DateFrom = &dateFrom
	}

	if dateToStr := query.Get("dateTo"); dateToStr != "" {
		dateTo, err := time.Parse(domain.DateFormat, dateToStr)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid dateTo: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateTo)
			return
		}
		req.DateTo = &dateTo
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if fieldErrs, ok := handlers.FieldErrorsFrom(err); ok {
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondValidationError(w, fieldErrs)
			return
		}
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.sweep.StartSession()

	h.logger.Info("GET /bookings - Bookings listed successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
