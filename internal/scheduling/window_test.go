package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthnet-api/internal/domain/entity"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"9:00", 0, true},
		{"09:00:00", 0, true},
		{"24:00", 0, true},
		{"09-00", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.minutes, got, "input %q", tt.in)
	}
}

func TestCanonicalDay(t *testing.T) {
	day, ok := CanonicalDay("monday")
	require.True(t, ok)
	assert.Equal(t, entity.DayMonday, day)

	day, ok = CanonicalDay(" SUNDAY ")
	require.True(t, ok)
	assert.Equal(t, entity.DaySunday, day)

	_, ok = CanonicalDay("Funday")
	assert.False(t, ok)
}

func TestValidateWindow(t *testing.T) {
	valid := entity.AvailabilityWindow{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00"}
	assert.NoError(t, ValidateWindow(valid))

	tests := []struct {
		name   string
		window entity.AvailabilityWindow
		want   error
	}{
		{
			name:   "start equals end",
			window: entity.AvailabilityWindow{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "09:00"},
			want:   ErrWindowOrder,
		},
		{
			name:   "start after end",
			window: entity.AvailabilityWindow{DayOfWeek: "Monday", StartTime: "10:00", EndTime: "09:00"},
			want:   ErrWindowOrder,
		},
		{
			name:   "bad start format",
			window: entity.AvailabilityWindow{DayOfWeek: "Monday", StartTime: "9am", EndTime: "10:00"},
			want:   ErrInvalidTimeFormat,
		},
		{
			name:   "bad day",
			window: entity.AvailabilityWindow{DayOfWeek: "Someday", StartTime: "09:00", EndTime: "10:00"},
			want:   ErrUnknownDayOfWeek,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateWindow(tt.window), tt.want)
		})
	}
}

func TestOverlaps(t *testing.T) {
	base := entity.AvailabilityWindow{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "11:00"}

	assert.True(t, Overlaps(base, entity.AvailabilityWindow{DayOfWeek: "monday", StartTime: "10:00", EndTime: "12:00"}))
	assert.True(t, Overlaps(base, entity.AvailabilityWindow{DayOfWeek: "Monday", StartTime: "08:00", EndTime: "09:30"}))
	assert.True(t, Overlaps(base, entity.AvailabilityWindow{DayOfWeek: "Monday", StartTime: "09:30", EndTime: "10:30"}))

	// Touching boundaries do not overlap
	assert.False(t, Overlaps(base, entity.AvailabilityWindow{DayOfWeek: "Monday", StartTime: "11:00", EndTime: "12:00"}))
	assert.False(t, Overlaps(base, entity.AvailabilityWindow{DayOfWeek: "Monday", StartTime: "08:00", EndTime: "09:00"}))

	// Different day never overlaps
	assert.False(t, Overlaps(base, entity.AvailabilityWindow{DayOfWeek: "Tuesday", StartTime: "09:00", EndTime: "11:00"}))
}

// Windows loaded from postgres carry TIME-column values; AfterFind must
// put them back into the shape Overlaps understands, otherwise a stored
// window would never collide with a new one.
func TestOverlapsAgainstLoadedWindow(t *testing.T) {
	stored := entity.AvailabilityWindow{DayOfWeek: "Monday", StartTime: "09:00:00", EndTime: "10:00:00"}
	require.NoError(t, stored.AfterFind(nil))

	incoming := entity.AvailabilityWindow{DayOfWeek: "Monday", StartTime: "09:30", EndTime: "10:30"}
	assert.True(t, Overlaps(incoming, stored))
	assert.True(t, Overlaps(stored, incoming))

	clear := entity.AvailabilityWindow{DayOfWeek: "Monday", StartTime: "10:00", EndTime: "11:00"}
	assert.False(t, Overlaps(clear, stored))
}
