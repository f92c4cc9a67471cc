package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterFindTrimsTimeColumns(t *testing.T) {
	w := AvailabilityWindow{StartTime: "09:00:00", EndTime: "10:30:00"}
	require.NoError(t, w.AfterFind(nil))
	assert.Equal(t, "09:00", w.StartTime)
	assert.Equal(t, "10:30", w.EndTime)

	// Already-trimmed values pass through unchanged.
	w = AvailabilityWindow{StartTime: "14:00", EndTime: "15:00"}
	require.NoError(t, w.AfterFind(nil))
	assert.Equal(t, "14:00", w.StartTime)
	assert.Equal(t, "15:00", w.EndTime)
}
