package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ConsultService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ConsultService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date     string `json:"date"`
	Slots    []Slot `json:"slots"`
	Degraded bool   `json:"degraded,omitempty"`
}

// Slot модель временного слота
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	BookingID *int64 `json:"bookingId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Time:      slot.Time.String(),
			Available: slot.Available,
			BookingID: slot.BookingID,
		}
	}

	return &AvailableSlotsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    slots,
		Degraded: resp.Degraded,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.Request{Date: date}, nil
}
