package get_available_slots

import (
	"github.com/m04kA/SMC-ConsultService/internal/domain"
	"github.com/m04kA/SMC-ConsultService/pkg/types"
)

// buildSlots размечает фиксированную сетку слотов занятостью
// Слот занят, если активное бронирование (pending/confirmed/rescheduled)
// имеет совпадающее ТЕКУЩЕЕ время на эту дату. Перенесённое на другой
// день/время бронирование в выборку по дате уже не попадает и слот не блокирует
func buildSlots(bookings []*domain.Booking) []domain.Slot {
	occupied := make(map[types.TimeString]int64, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if _, taken := occupied[b.Time]; !taken {
			occupied[b.Time] = b.ID
		}
	}

	grid := domain.SlotGrid()
	slots := make([]domain.Slot, len(grid))

	for i, gridTime := range grid {
		if bookingID, taken := occupied[gridTime]; taken {
			id := bookingID
			slots[i] = domain.Slot{Time: gridTime, Available: false, BookingID: &id}
		} else {
			slots[i] = domain.Slot{Time: gridTime, Available: true}
		}
	}

	return slots
}

// allAvailableSlots возвращает полностью свободную сетку
// Используется как fail-open дефолт при недоступности хранилища
func allAvailableSlots() []domain.Slot {
	grid := domain.SlotGrid()
	slots := make([]domain.Slot, len(grid))
	for i, gridTime := range grid {
		slots[i] = domain.Slot{Time: gridTime, Available: true}
	}
	return slots
}
