package dismiss_past_due

import "net/http"

// Handler обработчик скрытия флага просроченных бронирований
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

// Handle обрабатывает POST /api/v1/admin/bookings/past-due/dismiss
// Скрывает флаг "needs attention" до следующей загрузки списка, данные не меняет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.useCase.Dismiss()
	h.logger.Info("DismissPastDue: past due flag dismissed")
	w.WriteHeader(http.StatusNoContent)
}
