package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ConsultService/internal/domain"
	"github.com/m04kA/SMC-ConsultService/internal/integrations/reviewservice"
	"github.com/m04kA/SMC-ConsultService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	GetUpcoming(ctx context.Context, today time.Time) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking, expectedVersion int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason *string) error
	Reschedule(ctx context.Context, id int64, newDate time.Time, newTime types.TimeString, reason string) error
	Complete(ctx context.Context, id int64, conclusion string) error
	Delete(ctx context.Context, id int64) error
}

// ReviewServiceClient интерфейс клиента для ReviewService
type ReviewServiceClient interface {
	NotifyCanReview(ctx context.Context, eligibility reviewservice.ReviewEligibility) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
