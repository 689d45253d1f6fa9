package complete_booking

import "github.com/m04kA/SMC-ConsultService/internal/service/bookings/models"

// CompleteBookingRequest запрос на завершение бронирования
type CompleteBookingRequest struct {
	Conclusion string `json:"conclusion"`
}

func (r *CompleteBookingRequest) ToServiceRequest() *models.CompleteBookingRequest {
	return &models.CompleteBookingRequest{
		Conclusion: r.Conclusion,
	}
}
