package scheduling

import (
	"strings"
	"time"

	"healthnet-api/internal/domain/entity"
)

// Resolver maps a doctor's recurring weekly windows and a calendar date to
// the concrete slots still bookable on that date. Pure and deterministic
// for a fixed clock; Now is injectable for tests.
type Resolver struct {
	Now func() time.Time
}

func NewResolver() *Resolver {
	return &Resolver{Now: time.Now}
}

// Resolve returns the subset of windows open on date and not yet consumed
// by a non-cancelled appointment for the same date. Dates strictly before
// the current date resolve to nothing: past-date booking is disallowed
// here, not just at the UI.
//
// The result keeps the doctor's original window order as given; callers
// fetch windows ordered by creation with start-time ascending tiebreak,
// and the filter here is order-preserving.
//
// Weekend blocking is deliberately NOT applied here; it is a configurable
// workflow-boundary policy. A window declared for Saturday resolves on a
// Saturday date.
func (r *Resolver) Resolve(windows []entity.AvailabilityWindow, date time.Time, existing []entity.Appointment) []entity.AvailabilityWindow {
	today := TruncateToDate(r.Now())
	if TruncateToDate(date).Before(today) {
		return nil
	}

	dayName := date.Weekday().String()

	taken := make(map[int]struct{}, len(existing))
	for _, appt := range existing {
		if appt.IsCancelled() {
			continue
		}
		if sameDate(appt.AppointmentDate, date) {
			taken[appt.TimeSlotID] = struct{}{}
		}
	}

	var available []entity.AvailabilityWindow
	for _, w := range windows {
		if !strings.EqualFold(w.DayOfWeek, dayName) {
			continue
		}
		if _, booked := taken[w.ID]; booked {
			continue
		}
		available = append(available, w)
	}
	return available
}

// TruncateToDate drops the clock, keeping the calendar date in the
// value's own location. All past/future date classification in the
// booking paths goes through this one definition of "today".
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
