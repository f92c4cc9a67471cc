package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data.
// A doctor belongs to exactly one hospital and exclusively owns its
// availability windows.
type DoctorProfile struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	HospitalID      uuid.UUID `gorm:"type:uuid;not null;index" json:"hospital_id"`
	Department      string    `gorm:"type:varchar(100);not null;index" json:"department"`
	Specialty       string    `gorm:"type:varchar(100);not null;index" json:"specialty"`
	ExperienceYears int       `gorm:"not null;default:0" json:"experience_years"`
	Phone           string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Biography       string    `gorm:"type:text" json:"biography,omitempty"`

	// Relationships
	User      User                 `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hospital  Hospital             `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	TimeSlots []AvailabilityWindow `gorm:"foreignKey:DoctorID" json:"available_time_slots,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
