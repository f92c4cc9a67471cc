package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		in   string
		want AppointmentStatus
		ok   bool
	}{
		{"pending", AppointmentStatusPending, true},
		{"scheduled", AppointmentStatusPending, true}, // display alias
		{"  Confirmed ", AppointmentStatusConfirmed, true},
		{"COMPLETED", AppointmentStatusCompleted, true},
		{"cancelled", AppointmentStatusCancelled, true},
		{"archived", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeStatus(tt.in)
		require.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, AppointmentStatusPending.CanTransitionTo(AppointmentStatusConfirmed))
	assert.True(t, AppointmentStatusPending.CanTransitionTo(AppointmentStatusCancelled))
	assert.True(t, AppointmentStatusConfirmed.CanTransitionTo(AppointmentStatusCompleted))
	assert.True(t, AppointmentStatusConfirmed.CanTransitionTo(AppointmentStatusCancelled))

	// No skipping forward, no moving backward.
	assert.False(t, AppointmentStatusPending.CanTransitionTo(AppointmentStatusCompleted))
	assert.False(t, AppointmentStatusConfirmed.CanTransitionTo(AppointmentStatusPending))
	assert.False(t, AppointmentStatusCompleted.CanTransitionTo(AppointmentStatusConfirmed))

	// Terminal states go nowhere, including cancel-after-complete and
	// double cancellation.
	assert.False(t, AppointmentStatusCompleted.CanTransitionTo(AppointmentStatusCancelled))
	assert.False(t, AppointmentStatusCancelled.CanTransitionTo(AppointmentStatusCancelled))

	// Self transitions are never legal.
	assert.False(t, AppointmentStatusPending.CanTransitionTo(AppointmentStatusPending))
}

func TestStatusTerminality(t *testing.T) {
	assert.False(t, AppointmentStatusPending.IsTerminal())
	assert.False(t, AppointmentStatusConfirmed.IsTerminal())
	assert.True(t, AppointmentStatusCompleted.IsTerminal())
	assert.True(t, AppointmentStatusCancelled.IsTerminal())
}
