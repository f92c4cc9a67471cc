package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	PhoneNumber string    `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	BloodGroup  string    `gorm:"type:varchar(5)" json:"blood_group,omitempty"`
	WeightKg    float64   `gorm:"type:decimal(5,2);default:0" json:"weight_kg,omitempty"`
	HeightCm    float64   `gorm:"type:decimal(5,2);default:0" json:"height_cm,omitempty"`
	Address     string    `gorm:"type:text" json:"address,omitempty"`
	City        string    `gorm:"type:varchar(100)" json:"city,omitempty"`
	State       string    `gorm:"type:varchar(100)" json:"state,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
