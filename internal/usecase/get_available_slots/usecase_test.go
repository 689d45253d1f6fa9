package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultService/internal/domain"
	"github.com/m04kA/SMC-ConsultService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetActiveByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	return time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
}

func TestExecute_EmptyDay(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)

	require.Len(t, resp.Slots, domain.SlotGridSize)
	assert.False(t, resp.Degraded)
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].Time)
	assert.Equal(t, types.TimeString("17:00"), resp.Slots[len(resp.Slots)-1].Time)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s", slot.Time)
		assert.Nil(t, slot.BookingID)
	}
}

func TestExecute_OccupiedSlots(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, Time: types.TimeString("10:00"), Status: domain.StatusPending},
			{ID: 2, Time: types.TimeString("14:30"), Status: domain.StatusConfirmed},
		},
	}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)

	occupied := map[types.TimeString]int64{}
	for _, slot := range resp.Slots {
		if !slot.Available {
			require.NotNil(t, slot.BookingID)
			occupied[slot.Time] = *slot.BookingID
		}
	}

	assert.Equal(t, map[types.TimeString]int64{
		"10:00": 1,
		"14:30": 2,
	}, occupied)
}

func TestExecute_SlotFreedAfterCancel(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, Time: types.TimeString("10:00"), Status: domain.StatusPending},
		},
	}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)
	assert.False(t, slotAvailable(t, resp, "10:00"))

	// после отмены бронирование перестаёт быть активным и в выборку не попадает
	repo.bookings = nil

	resp, err = uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)
	assert.True(t, slotAvailable(t, resp, "10:00"))
}

func TestExecute_FailOpenOnRepoError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err, "storage errors must not surface to the caller")

	assert.True(t, resp.Degraded)
	require.Len(t, resp.Slots, domain.SlotGridSize)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_ZeroDate(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func slotAvailable(t *testing.T, resp *Response, at types.TimeString) bool {
	t.Helper()
	for _, slot := range resp.Slots {
		if slot.Time == at {
			return slot.Available
		}
	}
	t.Fatalf("slot %s not found in grid", at)
	return false
}
