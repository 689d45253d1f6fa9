package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ConsultService/internal/domain"
	"github.com/m04kA/SMC-ConsultService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-ConsultService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ConsultService/pkg/types"
)

// CreateBookingRequest HTTP request model
// initialStatus принимается только на админском маршруте прямого создания;
// клиентская форма это поле не передаёт
type CreateBookingRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM

	Company      string `json:"company"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`

	Purpose  string `json:"purpose"`
	Location string `json:"location"`
	Product  string `json:"product"`

	AdditionalInfo *string `json:"additionalInfo,omitempty"`

	InitialStatus *string `json:"initialStatus,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Парсинг даты/времени намеренно нестрогий: детальная валидация с привязкой
// к полям выполняется внутри use case
func (r *CreateBookingRequest) ToUseCaseRequest(allowInitialStatus bool) *createBooking.Request {
	req := &createBooking.Request{
		Time:           types.TimeString(r.Time),
		Company:        r.Company,
		ContactName:    r.ContactName,
		ContactEmail:   r.ContactEmail,
		ContactPhone:   r.ContactPhone,
		Purpose:        r.Purpose,
		Location:       r.Location,
		Product:        r.Product,
		AdditionalInfo: r.AdditionalInfo,
	}

	if date, err := time.Parse(domain.DateFormat, r.Date); err == nil {
		req.Date = date
	}

	if allowInitialStatus && r.InitialStatus != nil {
		status := domain.BookingStatus(*r.InitialStatus)
		req.InitialStatus = &status
	}

	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
