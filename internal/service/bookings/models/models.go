package models

import (
	"time"

	"github.com/m04kA/SMC-ConsultService/internal/domain"
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Status   *string    `json:"status,omitempty"`
	DateFrom *time.Time `json:"dateFrom,omitempty"`
	DateTo   *time.Time `json:"dateTo,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		DateFrom: r.DateFrom,
		DateTo:   r.DateTo,
	}

	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		if !status.IsValid() {
			return filter, domain.FieldErrors{"status": "unknown booking status"}
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// RescheduleBookingRequest запрос на перенос бронирования
type RescheduleBookingRequest struct {
	NewDate string `json:"newDate"` // YYYY-MM-DD
	NewTime string `json:"newTime"` // HH:MM
	Reason  string `json:"reason"`
}

// CompleteBookingRequest запрос на завершение бронирования
type CompleteBookingRequest struct {
	Conclusion string `json:"conclusion"`
}

// UpdateBookingRequest полное редактирование записи бронирования
// Version обязателен: при несовпадении с текущей версией запись не обновляется
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

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID   int64  `json:"id"`
	Date string `json:"date"` // "2025-10-15"
	Time string `json:"time"` // "10:00"

	Company      string `json:"company"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`

	Purpose  string `json:"purpose"`
	Location string `json:"location"`
	Product  string `json:"product"`

	AdditionalInfo *string `json:"additionalInfo,omitempty"`

	Status      string  `json:"status"`
	IsCompleted bool    `json:"isCompleted"`
	Conclusion  *string `json:"conclusion,omitempty"`

	RescheduleReason *string `json:"rescheduleReason,omitempty"`
	OriginalDate     *string `json:"originalDate,omitempty"`
	OriginalTime     *string `json:"originalTime,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	Version int64 `json:"version"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		Date:               b.Date.Format(domain.DateFormat),
		Time:               b.Time.String(),
		Company:            b.Company,
		ContactName:        b.ContactName,
		ContactEmail:       b.ContactEmail,
		ContactPhone:       b.ContactPhone,
		Purpose:            b.Purpose,
		Location:           b.Location,
		Product:            b.Product,
		AdditionalInfo:     b.AdditionalInfo,
		Status:             string(b.Status),
		IsCompleted:        b.IsCompleted,
		Conclusion:         b.Conclusion,
		RescheduleReason:   b.RescheduleReason,
		CancellationReason: b.CancellationReason,
		Version:            b.Version,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.OriginalDate != nil {
		dateStr := b.OriginalDate.Format(domain.DateFormat)
		resp.OriginalDate = &dateStr
	}
	if b.OriginalTime != nil {
		timeStr := b.OriginalTime.String()
		resp.OriginalTime = &timeStr
	}
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}
