package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type UpdatePatientProfileRequest struct {
	FullName    string  `json:"full_name" validate:"omitempty,min=2"`
	PhoneNumber string  `json:"phone_number" validate:"omitempty,min=10,max=20"`
	BloodGroup  string  `json:"blood_group" validate:"omitempty,max=5"`
	WeightKg    float64 `json:"weight_kg" validate:"omitempty,gte=0"`
	HeightCm    float64 `json:"height_cm" validate:"omitempty,gte=0"`
	Address     string  `json:"address" validate:"omitempty"`
	City        string  `json:"city" validate:"omitempty,max=100"`
	State       string  `json:"state" validate:"omitempty,max=100"`
}

// Response DTOs

type PatientProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email,omitempty"`
	FullName    string    `json:"full_name,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	DateOfBirth string    `json:"date_of_birth"`
	BloodGroup  string    `json:"blood_group,omitempty"`
	WeightKg    float64   `json:"weight_kg,omitempty"`
	HeightCm    float64   `json:"height_cm,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
}
