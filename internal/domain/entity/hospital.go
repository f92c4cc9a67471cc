package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Hospital represents a care facility patients can discover and book into
type Hospital struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Address        string          `gorm:"type:text;not null" json:"address"`
	City           string          `gorm:"type:varchar(100);not null;index" json:"city"`
	State          string          `gorm:"type:varchar(100);not null;index" json:"state"`
	Specialty      string          `gorm:"type:varchar(100);not null;index" json:"specialty"`
	BedTotal       int             `gorm:"not null" json:"bed_total"`
	BedAvailable   int             `gorm:"not null" json:"bed_available"`
	IsICUAvailable bool            `gorm:"not null;default:false" json:"is_icu_available"`
	ICUTotal       int             `gorm:"not null;default:0" json:"icu_total"`
	ICUAvailable   int             `gorm:"not null;default:0" json:"icu_available"`
	Phone          string          `gorm:"type:varchar(20);not null" json:"phone"`
	Email          string          `gorm:"type:varchar(255);not null" json:"email"`
	Image          string          `gorm:"type:text" json:"image,omitempty"`
	Rating         decimal.Decimal `gorm:"type:decimal(2,1);not null;default:0" json:"rating"`
	Established    *time.Time      `gorm:"type:date" json:"established,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Staff []DoctorProfile `gorm:"foreignKey:HospitalID" json:"staff,omitempty"`
}

func (Hospital) TableName() string {
	return "hospitals"
}

// HospitalFilter is a domain-level filter for querying hospitals.
// Used by repository layer to avoid coupling with delivery DTOs.
type HospitalFilter struct {
	Name      string // ILIKE
	City      string // ILIKE
	State     string // ILIKE
	Specialty string // ILIKE
}
