package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Canonical English day names used by AvailabilityWindow.DayOfWeek.
const (
	DayMonday    = "Monday"
	DayTuesday   = "Tuesday"
	DayWednesday = "Wednesday"
	DayThursday  = "Thursday"
	DayFriday    = "Friday"
	DaySaturday  = "Saturday"
	DaySunday    = "Sunday"
)

// DaysOfWeek lists the canonical day names in calendar order.
var DaysOfWeek = []string{
	DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday, DaySunday,
}

// AvailabilityWindow represents a recurring weekly time range during which
// a doctor accepts appointments. Times are 24-hour "HH:mm" strings and the
// window is open on every calendar date whose weekday matches DayOfWeek.
type AvailabilityWindow struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DayOfWeek string    `gorm:"type:varchar(10);not null" json:"day_of_week"`
	StartTime string    `gorm:"type:time;not null" json:"start_time"`
	EndTime   string    `gorm:"type:time;not null" json:"end_time"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (AvailabilityWindow) TableName() string {
	return "availability_windows"
}

// AfterFind restores the "HH:mm" shape after a read: postgres TIME
// columns scan back as "HH:mm:ss", which the scheduling package and the
// API contract do not accept.
func (w *AvailabilityWindow) AfterFind(_ *gorm.DB) error {
	w.StartTime = trimClock(w.StartTime)
	w.EndTime = trimClock(w.EndTime)
	return nil
}

func trimClock(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}
