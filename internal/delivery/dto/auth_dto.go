package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID             uuid.UUID               `json:"id"`
	Email          string                  `json:"email"`
	FullName       string                  `json:"full_name"`
	Role           string                  `json:"role"`
	DoctorProfile  *DoctorResponse         `json:"doctor_profile,omitempty"`
	PatientProfile *PatientProfileResponse `json:"patient_profile,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// Role-specific Registration Request DTOs

type RegisterPatientRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6"`
	FullName    string  `json:"full_name" validate:"required,min=2"`
	PhoneNumber string  `json:"phone_number" validate:"omitempty,min=10,max=20"`
	DateOfBirth string  `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	BloodGroup  string  `json:"blood_group" validate:"omitempty,max=5"`
	WeightKg    float64 `json:"weight_kg" validate:"omitempty,gte=0"`
	HeightCm    float64 `json:"height_cm" validate:"omitempty,gte=0"`
	Address     string  `json:"address" validate:"omitempty"`
	City        string  `json:"city" validate:"omitempty,max=100"`
	State       string  `json:"state" validate:"omitempty,max=100"`
}

type RegisterDoctorRequest struct {
	Email           string    `json:"email" validate:"required,email"`
	Password        string    `json:"password" validate:"required,min=6"`
	FullName        string    `json:"full_name" validate:"required,min=2"`
	HospitalID      uuid.UUID `json:"hospital_id" validate:"required"`
	Department      string    `json:"department" validate:"required,max=100"`
	Specialty       string    `json:"specialty" validate:"required,max=100"`
	ExperienceYears int       `json:"experience_years" validate:"omitempty,gte=0,lte=80"`
	Phone           string    `json:"phone" validate:"omitempty,min=10,max=20"`
	Biography       string    `json:"biography" validate:"omitempty"`
}
