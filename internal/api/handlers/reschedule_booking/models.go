package reschedule_booking

import "github.com/m04kA/SMC-ConsultService/internal/service/bookings/models"

// RescheduleBookingRequest запрос на перенос бронирования
type RescheduleBookingRequest struct {
	NewDate string `json:"newDate"`
	NewTime string `json:"newTime"`
	Reason  string `json:"reason"`
}

func (r *RescheduleBookingRequest) ToServiceRequest() *models.RescheduleBookingRequest {
	return &models.RescheduleBookingRequest{
		NewDate: r.NewDate,
		NewTime: r.NewTime,
		Reason:  r.Reason,
	}
}
