package get_past_due

import (
	"net/http"

	"github.com/m04kA/SMC-ConsultService/internal/api/handlers"
)

// Handler обработчик получения просроченных бронирований
type Handler struct {
	useCase SweepUseCase
	logger  Logger
}

func NewHandler(useCase SweepUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle обрабатывает GET /api/v1/admin/bookings/past-due
// Скрытый в текущей сессии флаг не поднимается повторно; новую сессию
// открывает полная загрузка админского списка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pastDue, err := h.useCase.LoadPastDue(ctx)
	if err != nil {
		h.logger.Error("GetPastDue: failed to load past due bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result := h.useCase.Scan(pastDue)

	handlers.RespondJSON(w, http.StatusOK, toResponse(result))
}
