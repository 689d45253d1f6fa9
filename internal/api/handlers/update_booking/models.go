package update_booking

import "github.com/m04kA/SMC-ConsultService/internal/service/bookings/models"

// UpdateBookingRequest запрос на полное редактирование бронирования
// version обязателен для optimistic concurrency control
type UpdateBookingRequest struct {
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Company        string  `json:"company"`
	ContactName    string  `json:"contactName"`
	ContactEmail   string  `json:"contactEmail"`
	ContactPhone   string  `json:"contactPhone"`
	Purpose        string  `json:"purpose"`
	Location       string  `json:"location"`
	Product        string  `json:"product"`
	AdditionalInfo *string `json:"additionalInfo,omitempty"`
	Status         string  `json:"status"`
	Version        int64   `json:"version"`
}

func (r *UpdateBookingRequest) ToServiceRequest() *models.UpdateBookingRequest {
	return &models.UpdateBookingRequest{
		Date:           r.Date,
		Time:           r.Time,
		Company:        r.Company,
		ContactName:    r.ContactName,
		ContactEmail:   r.ContactEmail,
		ContactPhone:   r.ContactPhone,
		Purpose:        r.Purpose,
		Location:       r.Location,
		Product:        r.Product,
		AdditionalInfo: r.AdditionalInfo,
		Status:         r.Status,
		Version:        r.Version,
	}
}
