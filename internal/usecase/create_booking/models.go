package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ConsultService/internal/domain"
	"github.com/m04kA/SMC-ConsultService/pkg/types"
)

// Request модель запроса на создание бронирования
// InitialStatus заполняется только админским прямым созданием; клиентская
// форма всегда создаёт бронирование в статусе pending
type Request struct {
	Date time.Time
	Time types.TimeString

	Company      string
	ContactName  string
	ContactEmail string
	ContactPhone string

	Purpose  string
	Location string
	Product  string

	AdditionalInfo *string

	InitialStatus *domain.BookingStatus
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}

// toDomain собирает domain модель из запроса
func (r *Request) toDomain() *domain.Booking {
	status := domain.StatusPending
	if r.InitialStatus != nil {
		status = *r.InitialStatus
	}

	return &domain.Booking{
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
		Status:         status,
	}
}
