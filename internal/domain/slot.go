package domain

import "github.com/m04kA/SMC-ConsultService/pkg/types"

// Slot represents one bookable interval within the fixed business window
type Slot struct {
	Time      types.TimeString
	Available bool
	BookingID *int64 // ID бронирования, занимающего слот (если занят)
}

// SlotGrid возвращает упорядоченный список времён слотов фиксированного окна
// 08:00–17:00 с шагом 30 минут. Сетка не зависит от даты
func SlotGrid() []types.TimeString {
	grid := make([]types.TimeString, 0, SlotGridSize)

	current := types.TimeString(SlotGridOpenTime)
	closeTime := types.TimeString(SlotGridCloseTime)

	for {
		grid = append(grid, current)
		if !current.IsBefore(closeTime) {
			break
		}
		next, err := current.AddMinutes(SlotDurationMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return grid
}

// IsOnSlotGrid returns true if t is one of the fixed grid times
func IsOnSlotGrid(t types.TimeString) bool {
	if t.IsBefore(types.TimeString(SlotGridOpenTime)) || t.IsAfter(types.TimeString(SlotGridCloseTime)) {
		return false
	}

	for _, gridTime := range SlotGrid() {
		if gridTime == t {
			return true
		}
	}
	return false
}
