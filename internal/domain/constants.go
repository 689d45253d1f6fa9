package domain

// Slot grid: fixed business window, does not vary by date, purpose or location
const (
	SlotGridOpenTime    = "08:00"
	SlotGridCloseTime   = "17:00"
	SlotDurationMinutes = 30
	SlotGridSize        = 19 // 08:00 .. 17:00 включительно с шагом 30 минут
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AutoCompleteConclusion фиксированное заключение, которое проставляется
// при массовом закрытии просроченных бронирований
const AutoCompleteConclusion = "Automatically completed - past booking"

// Limits on free-text fields
const (
	MaxAdditionalInfoLength     = 1000
	MaxConclusionLength         = 2000
	MaxRescheduleReasonLength   = 500
	MaxCancellationReasonLength = 500
)

// ActiveStatuses статусы, при которых бронирование занимает свой (date, time) слот
// Rescheduled остаётся активным: его ТЕКУЩИЕ дата/время блокируют слот,
// прежний слот освобождается самим фактом переноса
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusRescheduled,
}

// TerminalStatuses статусы, из которых нет переходов
var TerminalStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}

// ValidPurposes закрытый список целей консультации
var ValidPurposes = []string{
	"consultation",
	"product_demo",
	"technical_support",
	"partnership",
	"other",
}

// ValidLocations закрытый список форматов встречи
var ValidLocations = []string{
	"office",
	"online",
	"client_site",
}

// ValidProducts закрытый список продуктовых направлений
var ValidProducts = []string{
	"water_treatment",
	"filtration_systems",
	"chemical_dosing",
	"maintenance_service",
	"spare_parts",
}
