package get_past_due

import (
	"github.com/m04kA/SMC-ConsultService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ConsultService/internal/usecase/sweep_past_due"
)

// PastDueResponse список просроченных бронирований с флагом внимания
type PastDueResponse struct {
	Bookings       []models.BookingResponse `json:"bookings"`
	NeedsAttention bool                     `json:"needsAttention"`
}

func toResponse(result *sweep_past_due.ScanResult) *PastDueResponse {
	list := models.FromDomainBookingList(result.PastDue)
	return &PastDueResponse{
		Bookings:       list.Bookings,
		NeedsAttention: result.NeedsAttention,
	}
}
