package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type UpdateDoctorRequest struct {
	FullName        string `json:"full_name" validate:"omitempty,min=2"`
	Department      string `json:"department" validate:"omitempty,max=100"`
	Specialty       string `json:"specialty" validate:"omitempty,max=100"`
	ExperienceYears *int   `json:"experience_years" validate:"omitempty,gte=0,lte=80"`
	Phone           string `json:"phone" validate:"omitempty,min=10,max=20"`
	Biography       string `json:"biography" validate:"omitempty"`
	IsActive        *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID          `json:"id"`
	Email           string             `json:"email"`
	FullName        string             `json:"full_name"`
	HospitalID      uuid.UUID          `json:"hospital_id"`
	HospitalName    string             `json:"hospital_name,omitempty"`
	Department      string             `json:"department"`
	Specialty       string             `json:"specialty"`
	ExperienceYears int                `json:"experience_years"`
	Phone           string             `json:"phone,omitempty"`
	Biography       string             `json:"biography,omitempty"`
	IsActive        *bool              `json:"is_active,omitempty"`
	TimeSlots       []TimeSlotResponse `json:"available_time_slots,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
