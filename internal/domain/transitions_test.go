package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatus_AllowedTransitions(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		op   Operation
		want BookingStatus
	}{
		{"pending confirm", StatusPending, OpConfirm, StatusConfirmed},
		{"pending cancel", StatusPending, OpCancel, StatusCancelled},
		{"pending reschedule", StatusPending, OpReschedule, StatusRescheduled},
		{"confirmed reschedule", StatusConfirmed, OpReschedule, StatusRescheduled},
		{"confirmed cancel", StatusConfirmed, OpCancel, StatusCancelled},
		{"confirmed complete", StatusConfirmed, OpComplete, StatusCompleted},
		{"rescheduled reschedule", StatusRescheduled, OpReschedule, StatusRescheduled},
		{"rescheduled cancel", StatusRescheduled, OpCancel, StatusCancelled},
		{"rescheduled complete", StatusRescheduled, OpComplete, StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := NextStatus(tt.from, tt.op)
			require.True(t, ok)
			assert.Equal(t, tt.want, next)
		})
	}
}

func TestNextStatus_ForbiddenTransitions(t *testing.T) {
	allStatuses := []BookingStatus{
		StatusPending, StatusConfirmed, StatusRescheduled, StatusCancelled, StatusCompleted,
	}
	allOps := []Operation{OpConfirm, OpCancel, OpReschedule, OpComplete}

	allowed := map[transitionKey]bool{
		{StatusPending, OpConfirm}:        true,
		{StatusPending, OpCancel}:         true,
		{StatusPending, OpReschedule}:     true,
		{StatusConfirmed, OpReschedule}:   true,
		{StatusConfirmed, OpCancel}:       true,
		{StatusConfirmed, OpComplete}:     true,
		{StatusRescheduled, OpReschedule}: true,
		{StatusRescheduled, OpCancel}:     true,
		{StatusRescheduled, OpComplete}:   true,
	}

	for _, from := range allStatuses {
		for _, op := range allOps {
			if allowed[transitionKey{from, op}] {
				continue
			}
			t.Run(string(from)+" "+string(op), func(t *testing.T) {
				_, ok := NextStatus(from, op)
				assert.False(t, ok)
			})
		}
	}
}

func TestNextStatus_TerminalStatusesHaveNoTransitions(t *testing.T) {
	allOps := []Operation{OpConfirm, OpCancel, OpReschedule, OpComplete}

	for _, status := range TerminalStatuses {
		for _, op := range allOps {
			assert.False(t, CanTransition(status, op),
				"terminal status %s must not allow %s", status, op)
		}
	}
}

func TestNextStatus_PendingCannotBeCompletedDirectly(t *testing.T) {
	_, ok := NextStatus(StatusPending, OpComplete)
	assert.False(t, ok)
}
