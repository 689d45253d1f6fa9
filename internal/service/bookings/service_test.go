package bookings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ConsultService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ConsultService/internal/integrations/reviewservice"
	"github.com/m04kA/SMC-ConsultService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ConsultService/pkg/ptr"
	"github.com/m04kA/SMC-ConsultService/pkg/types"
)

type statusChange struct {
	ID     int64
	Status domain.BookingStatus
}

type rescheduleCall struct {
	ID      int64
	NewDate time.Time
	NewTime types.TimeString
	Reason  string
}

type fakeRepo struct {
	byID   map[int64]*domain.Booking
	active []*domain.Booking

	listErr   error
	updateErr error

	statusChanges  []statusChange
	cancelledIDs   []int64
	cancelReasons  []*string
	reschedules    []rescheduleCall
	completedIDs   []int64
	conclusions    []string
	deletedIDs     []int64
	updatedBooking *domain.Booking
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Booking, 0, len(f.byID))
	for _, b := range f.byID {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) GetActiveByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.active, nil
}

func (f *fakeRepo) GetUpcoming(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.List(context.Background(), domain.BookingsFilter{})
}

func (f *fakeRepo) Update(_ context.Context, booking *domain.Booking, expectedVersion int64) (*domain.Booking, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	current, ok := f.byID[booking.ID]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	if current.Version != expectedVersion {
		return nil, bookingRepo.ErrVersionConflict
	}
	updated := *booking
	updated.Version = expectedVersion + 1
	f.updatedBooking = &updated
	return &updated, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.statusChanges = append(f.statusChanges, statusChange{ID: id, Status: status})
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, reason *string) error {
	f.cancelledIDs = append(f.cancelledIDs, id)
	f.cancelReasons = append(f.cancelReasons, reason)
	return nil
}

func (f *fakeRepo) Reschedule(_ context.Context, id int64, newDate time.Time, newTime types.TimeString, reason string) error {
	f.reschedules = append(f.reschedules, rescheduleCall{ID: id, NewDate: newDate, NewTime: newTime, Reason: reason})
	return nil
}

func (f *fakeRepo) Complete(_ context.Context, id int64, conclusion string) error {
	f.completedIDs = append(f.completedIDs, id)
	f.conclusions = append(f.conclusions, conclusion)
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeReviewClient struct {
	notified []reviewservice.ReviewEligibility
	err      error
}

func (f *fakeReviewClient) NotifyCanReview(_ context.Context, e reviewservice.ReviewEligibility) error {
	f.notified = append(f.notified, e)
	return f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func storedBooking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		Date:         day(2025, 11, 3),
		Time:         types.TimeString("10:00"),
		Company:      "Aqua Systems LLC",
		ContactName:  "Ivan Petrov",
		ContactEmail: "ivan.petrov@aquasystems.ru",
		ContactPhone: "+7 900 123-45-67",
		Purpose:      "consultation",
		Location:     "office",
		Product:      "water_treatment",
		Status:       status,
		Version:      1,
	}
}

func newTestService(repo *fakeRepo, review *fakeReviewClient) *Service {
	if review == nil {
		review = &fakeReviewClient{}
	}
	return NewService(repo, review, noopLogger{})
}

// Confirm

func TestConfirm_Pending(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: storedBooking(1, domain.StatusPending)}}
	svc := newTestService(repo, nil)

	require.NoError(t, svc.Confirm(context.Background(), 1))

	require.Len(t, repo.statusChanges, 1)
	assert.Equal(t, statusChange{ID: 1, Status: domain.StatusConfirmed}, repo.statusChanges[0])
}

func TestConfirm_InvalidFromStatus(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusConfirmed, domain.StatusRescheduled, domain.StatusCancelled, domain.StatusCompleted,
	} {
		repo := &fakeRepo{byID: map[int64]*domain.Booking{1: storedBooking(1, status)}}
		svc := newTestService(repo, nil)

		err := svc.Confirm(context.Background(), 1)
		assert.ErrorIs(t, err, ErrInvalidTransition, "status %s", status)
		assert.Empty(t, repo.statusChanges)
	}
}

func TestConfirm_NotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{byID: map[int64]*domain.Booking{}}, nil)

	err := svc.Confirm(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// Cancel

func TestCancel_WithReason(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: storedBooking(1, domain.StatusConfirmed)}}
	svc := newTestService(repo, nil)

	reason := "client asked to cancel"
	require.NoError(t, svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{Reason: &reason}))

	require.Len(t, repo.cancelledIDs, 1)
	require.NotNil(t, repo.cancelReasons[0])
	assert.Equal(t, reason, *repo.cancelReasons[0])
}

func TestCancel_WithoutReason(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: storedBooking(1, domain.StatusPending)}}
	svc := newTestService(repo, nil)

	require.NoError(t, svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{}))
	require.Len(t, repo.cancelReasons, 1)
	assert.Nil(t, repo.cancelReasons[0])
}

func TestCancel_TerminalStatus(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCancelled, domain.StatusCompleted} {
		repo := &fakeRepo{byID: map[int64]*domain.Booking{1: storedBooking(1, status)}}
		svc := newTestService(repo, nil)

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{})
		assert.ErrorIs(t, err, ErrInvalidTransition, "status %s", status)
	}
}

func TestCancel_ReasonTooLong(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: storedBooking(1, domain.StatusPending)}}
	svc := newTestService(repo, nil)

	reason := strings.Repeat("x", domain.MaxCancellationReasonLength+1)
	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{Reason: &reason})

	var fieldErrs domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "reason")
}

// Reschedule

func TestReschedule_Success(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: storedBooking(1, domain.StatusConfirmed)}}
	svc := newTestService(repo, nil)

	err := svc.Reschedule(context.Background(), 1, &models.RescheduleBookingRequest{
		NewDate: "2025-11-10",
		NewTime: "14:30",
		Reason:  "client asked to move the meeting",
	})
	require.NoError(t, err)

	require.Len(t, repo.reschedules, 1)
	call := repo.reschedules[0]
	assert.Equal(t, int64(1), call.ID)
	assert.Equal(t, day(2025, 11, 10), call.NewDate)
	assert.Equal(t, types.TimeString("14:30"), call.NewTime)
	assert.Equal(t, "client asked to move the meeting", call.Reason)
}

func TestReschedule_InputValidation(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: storedBooking(1, domain.StatusPending)}}
	svc := newTestService(repo, nil)

	err := svc.Reschedule(context.Background(), 1, &models.RescheduleBookingRequest{})

	var fieldErrs domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "newDate")
	assert.Contains(t, fieldErrs, "newTime")
	assert.Contains(t, fieldErrs, "reason")
	assert.Empty(t, repo.reschedules)
}

func TestReschedule_TimeOffGrid(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: storedBooking(1, domain.StatusPending)}}
	svc := newTestService(repo, nil)

	err := svc.Reschedule(context.Background(), 1, &models.RescheduleBookingRequest{
		NewDate: "2025-11-10",
		NewTime: "14:45",
		Reason:  "move",
	})

	var fieldErrs domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "newTime")
}

func TestReschedule_TargetSlotTaken(t *testing.T) {
	repo := &fakeRepo{
		byID: map[int64]*domain.Booking{1: storedBooking(1, domain.StatusConfirmed)},
		active: []*domain.Booking{
			{ID: 2, Time: types.TimeString("14:30"), Status: domain.StatusPending},
		},
	}
	svc := newTestService(repo, nil)

	err := svc.Reschedule(context.Background(), 1, &models.RescheduleBookingRequest{
		NewDate: "2025-11-10",
		NewTime: "14:30",
		Reason:  "move",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, repo.reschedules)
}

func TestReschedule_OwnSlotDoesNotBlock(t *testing.T) {
	// перенос на собственный текущий слот не считается конфликтом
	booking := storedBooking(1, domain.StatusConfirmed)
	repo := &fakeRepo{
		byID:   map[int64]*domain.Booking{1: booking},
		active: []*domain.Booking{booking},
	}
	svc := newTestService(repo, nil)

	err := svc.Reschedule(context.Background(), 1, &models.RescheduleBookingRequest{
		NewDate: "2025-11-03",
		NewTime: "10:00",
		Reason:  "no change actually",
	})
	assert.NoError(t, err)
}

func TestReschedule_TerminalStatus(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: storedBooking(1, domain.StatusCompleted)}}
	svc := newTestService(repo, nil)

	err := svc.Reschedule(context.Background(), 1, &models.RescheduleBookingRequest{
		NewDate: "2025-11-10",
		NewTime: "14:30",
		Reason:  "move",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

// Complete

func TestComplete_Success(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: storedBooking(1, domain.StatusConfirmed)}}
	review := &fakeReviewClient{}
	svc := newTestService(repo, review)

	err := svc.Complete(context.Background(), 1, &models.CompleteBookingRequest{
		Conclusion: "Discussed water treatment setup, sending offer",
	})
	require.NoError(t, err)

	require.Len(t, repo.completedIDs, 1)
	assert.Equal(t, "Discussed water treatment setup, sending offer", repo.conclusions[0])

	require.Len(t, review.notified, 1)
	assert.Equal(t, int64(1), review.notified[0].BookingID)
	assert.True(t, review.notified[0].CanReview)
}

func TestComplete_EmptyConclusion(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: storedBooking(1, domain.StatusConfirmed)}}
	svc := newTestService(repo, nil)

	for _, conclusion := range []string{"", "   ", "\t\n"} {
		err := svc.Complete(context.Background(), 1, &models.CompleteBookingRequest{Conclusion: conclusion})

		var fieldErrs domain.FieldErrors
		require.ErrorAs(t, err, &fieldErrs, "conclusion %q", conclusion)
		assert.Contains(t, fieldErrs, "conclusion")
	}
	assert.Empty(t, repo.completedIDs)
}

func TestComplete_PendingRejected(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: storedBooking(1, domain.StatusPending)}}
	svc := newTestService(repo, nil)

	err := svc.Complete(context.Background(), 1, &models.CompleteBookingRequest{Conclusion: "done"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestComplete_ReviewServiceFailureIsNonFatal(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: storedBooking(1, domain.StatusConfirmed)}}
	review := &fakeReviewClient{err: errors.New("review service down")}
	svc := newTestService(repo, review)

	err := svc.Complete(context.Background(), 1, &models.CompleteBookingRequest{Conclusion: "done"})
	assert.NoError(t, err, "review notification must not roll back the completion")
	assert.Len(t, repo.completedIDs, 1)
}

// Update

func validUpdateRequest() *models.UpdateBookingRequest {
	return &models.UpdateBookingRequest{
		Date:         "2025-11-05",
		Time:         "11:30",
		Company:      "Aqua Systems LLC",
		ContactName:  "Ivan Petrov",
		ContactEmail: "ivan.petrov@aquasystems.ru",
		ContactPhone: "+7 900 123-45-67",
		Purpose:      "product_demo",
		Location:     "online",
		Product:      "filtration_systems",
		Status:       "confirmed",
		Version:      1,
	}
}

func TestUpdate_Success(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: storedBooking(1, domain.StatusPending)}}
	svc := newTestService(repo, nil)

	resp, err := svc.Update(context.Background(), 1, validUpdateRequest())
	require.NoError(t, err)

	assert.Equal(t, "2025-11-05", resp.Date)
	assert.Equal(t, "11:30", resp.Time)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, int64(2), resp.Version, "version increments on every successful update")
}

func TestUpdate_VersionConflict(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: storedBooking(1, domain.StatusPending)}}
	svc := newTestService(repo, nil)

	req := validUpdateRequest()
	req.Version = 5

	_, err := svc.Update(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestUpdate_SlotTaken(t *testing.T) {
	repo := &fakeRepo{
		byID:      map[int64]*domain.Booking{1: storedBooking(1, domain.StatusPending)},
		updateErr: bookingRepo.ErrSlotTaken,
	}
	svc := newTestService(repo, nil)

	_, err := svc.Update(context.Background(), 1, validUpdateRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUpdate_ValidationErrors(t *testing.T) {
	svc := newTestService(&fakeRepo{byID: map[int64]*domain.Booking{}}, nil)

	req := validUpdateRequest()
	req.Date = "05.11.2025"
	req.Status = "archived"
	req.ContactEmail = ""

	_, err := svc.Update(context.Background(), 1, req)

	var fieldErrs domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "date")
	assert.Contains(t, fieldErrs, "status")
	assert.Contains(t, fieldErrs, "contactEmail")
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{byID: map[int64]*domain.Booking{}}, nil)

	_, err := svc.Update(context.Background(), 99, validUpdateRequest())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// Delete

func TestDelete_CancelledOnly(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: storedBooking(1, domain.StatusCancelled)}}
	svc := newTestService(repo, nil)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.deletedIDs)
}

func TestDelete_NonCancelledRejected(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusPending, domain.StatusConfirmed, domain.StatusRescheduled, domain.StatusCompleted,
	} {
		repo := &fakeRepo{byID: map[int64]*domain.Booking{1: storedBooking(1, status)}}
		svc := newTestService(repo, nil)

		err := svc.Delete(context.Background(), 1)
		assert.ErrorIs(t, err, ErrCannotDelete, "status %s", status)
		assert.Empty(t, repo.deletedIDs)
	}
}

// List

func TestList_InvalidStatusFilter(t *testing.T) {
	svc := newTestService(&fakeRepo{byID: map[int64]*domain.Booking{}}, nil)

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("archived")})

	var fieldErrs domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "status")
}

func TestList_RepoError(t *testing.T) {
	svc := newTestService(&fakeRepo{listErr: errors.New("connection refused")}, nil)

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}
