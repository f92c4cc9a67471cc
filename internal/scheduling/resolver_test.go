package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthnet-api/internal/domain/entity"
)

// 2025-03-10 is a Monday.
var (
	monday  = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tuesday = monday.AddDate(0, 0, 1)
)

func fixedResolver(today time.Time) *Resolver {
	return &Resolver{Now: func() time.Time { return today }}
}

func window(id int, day, start, end string) entity.AvailabilityWindow {
	return entity.AvailabilityWindow{ID: id, DayOfWeek: day, StartTime: start, EndTime: end}
}

func TestTruncateToDateKeepsCalendarDateAndLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	late := time.Date(2025, 3, 10, 23, 45, 12, 999, loc)

	got := TruncateToDate(late)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())

	// Just past local midnight lands on the next calendar date.
	assert.Equal(t, 11, TruncateToDate(late.Add(15*time.Minute)).Day())
}

func TestResolveFiltersByDayOfWeek(t *testing.T) {
	windows := []entity.AvailabilityWindow{
		window(1, "Monday", "09:00", "10:00"),
		window(2, "Tuesday", "09:00", "10:00"),
		window(3, "monday", "14:00", "15:00"), // case-insensitive match
	}

	got := fixedResolver(monday).Resolve(windows, monday, nil)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	got = fixedResolver(monday).Resolve(windows, tuesday, nil)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestResolveExcludesBookedSlots(t *testing.T) {
	doctorID := uuid.New()
	windows := []entity.AvailabilityWindow{
		window(1, "Monday", "09:00", "10:00"),
		window(2, "Monday", "10:00", "11:00"),
	}
	existing := []entity.Appointment{
		{DoctorID: doctorID, AppointmentDate: monday, TimeSlotID: 1, Status: entity.AppointmentStatusPending},
	}

	got := fixedResolver(monday).Resolve(windows, monday, existing)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestResolveCancelledAppointmentFreesSlot(t *testing.T) {
	windows := []entity.AvailabilityWindow{window(1, "Monday", "09:00", "10:00")}
	existing := []entity.Appointment{
		{AppointmentDate: monday, TimeSlotID: 1, Status: entity.AppointmentStatusCancelled},
	}

	got := fixedResolver(monday).Resolve(windows, monday, existing)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestResolveIgnoresAppointmentsOnOtherDates(t *testing.T) {
	windows := []entity.AvailabilityWindow{window(1, "Monday", "09:00", "10:00")}
	otherMonday := monday.AddDate(0, 0, 7)
	existing := []entity.Appointment{
		{AppointmentDate: otherMonday, TimeSlotID: 1, Status: entity.AppointmentStatusConfirmed},
	}

	got := fixedResolver(monday).Resolve(windows, monday, existing)
	require.Len(t, got, 1)
}

func TestResolvePastDateReturnsNothing(t *testing.T) {
	windows := []entity.AvailabilityWindow{window(1, "Monday", "09:00", "10:00")}

	// Resolving last week's Monday from this Monday yields nothing even
	// though the day of week matches.
	got := fixedResolver(monday).Resolve(windows, monday.AddDate(0, 0, -7), nil)
	assert.Empty(t, got)

	// Same-day resolution is allowed.
	got = fixedResolver(monday).Resolve(windows, monday, nil)
	assert.Len(t, got, 1)
}

func TestResolveWeekendWindowStillResolves(t *testing.T) {
	// Weekend policy lives at the workflow boundary; the resolver honors
	// a Saturday window on a Saturday date.
	saturday := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	windows := []entity.AvailabilityWindow{window(1, "Saturday", "09:00", "10:00")}

	got := fixedResolver(monday).Resolve(windows, saturday, nil)
	require.Len(t, got, 1)
}

func TestResolvePreservesWindowOrder(t *testing.T) {
	windows := []entity.AvailabilityWindow{
		window(1, "Monday", "08:00", "09:00"),
		window(2, "Monday", "10:00", "11:00"),
		window(3, "Monday", "13:00", "14:00"),
	}

	got := fixedResolver(monday).Resolve(windows, monday, nil)
	require.Len(t, got, 3)
	assert.Equal(t, []int{got[0].ID, got[1].ID, got[2].ID}, []int{1, 2, 3})
}

// Mirrors the first-come-first-served booking story: one window, one
// booking, the next patient sees nothing.
func TestResolveSlotConsumedAfterBooking(t *testing.T) {
	windows := []entity.AvailabilityWindow{window(1, "Monday", "09:00", "10:00")}

	r := fixedResolver(monday)
	got := r.Resolve(windows, monday, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "09:00", got[0].StartTime)

	booked := []entity.Appointment{
		{AppointmentDate: monday, TimeSlotID: 1, Status: entity.AppointmentStatusPending},
	}
	got = r.Resolve(windows, monday, booked)
	assert.Empty(t, got)
}
