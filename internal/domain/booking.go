package domain

import (
	"time"

	"github.com/m04kA/SMC-ConsultService/pkg/types"
)

// BookingStatus represents the status of a consultation booking
type BookingStatus string

const (
	StatusPending     BookingStatus = "pending"
	StatusConfirmed   BookingStatus = "confirmed"
	StatusRescheduled BookingStatus = "rescheduled"
	StatusCancelled   BookingStatus = "cancelled"
	StatusCompleted   BookingStatus = "completed"
)

// IsTerminal returns true if no further transitions are permitted from the status
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// IsValid returns true if the status is one of the known booking statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRescheduled, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Booking represents a consultation meeting booking
type Booking struct {
	ID   int64
	Date time.Time // день консультации, время суток не используется
	Time types.TimeString

	Company      string
	ContactName  string
	ContactEmail string
	ContactPhone string

	Purpose  string
	Location string
	Product  string

	AdditionalInfo *string

	Status      BookingStatus
	IsCompleted bool
	Conclusion  *string

	// Reschedule history: original slot is captured on the first reschedule
	// and never overwritten afterwards
	RescheduleReason *string
	OriginalDate     *time.Time
	OriginalTime     *types.TimeString

	CancellationReason *string
	CancelledAt        *time.Time

	// Version для optimistic concurrency control на полном редактировании записи
	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its (date, time) slot
func (b *Booking) IsActive() bool {
	return !b.Status.IsTerminal()
}

// CanBeConfirmed returns true if the booking can be confirmed
func (b *Booking) CanBeConfirmed() bool {
	return CanTransition(b.Status, OpConfirm)
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return CanTransition(b.Status, OpCancel)
}

// CanBeRescheduled returns true if the booking can be rescheduled
func (b *Booking) CanBeRescheduled() bool {
	return CanTransition(b.Status, OpReschedule)
}

// CanBeCompleted returns true if the booking can be completed
func (b *Booking) CanBeCompleted() bool {
	return CanTransition(b.Status, OpComplete)
}

// IsPastDue returns true if the booking date has elapsed while the booking
// is still in a non-terminal status. Comparison is midnight-normalized.
func (b *Booking) IsPastDue(now time.Time) bool {
	if b.Status.IsTerminal() {
		return false
	}
	dateOnly := time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(), 0, 0, 0, 0, b.Date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, b.Date.Location())
	return dateOnly.Before(nowOnly)
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	Status   *BookingStatus // Фильтр по статусу (опционально)
	DateFrom *time.Time     // Начало периода (опционально)
	DateTo   *time.Time     // Конец периода (опционально)
}
