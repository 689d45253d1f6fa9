package complete_past_due

import (
	"net/http"

	"github.com/m04kA/SMC-ConsultService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultService/internal/api/middleware"
)

// Handler обработчик массового завершения просроченных бронирований
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

// Handle обрабатывает POST /api/v1/admin/bookings/past-due/complete
// Ответ содержит и закрытые, и не закрывшиеся бронирования: частичный
// результат - нормальный исход
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.useCase.BulkComplete(ctx)
	if err != nil {
		h.logger.Error("CompletePastDue: bulk complete failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	adminID, _ := middleware.AdminID(ctx)
	h.logger.Info("CompletePastDue: completed=%d, failed=%d, requested by admin %s",
		len(result.CompletedIDs), len(result.Failed), adminID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
