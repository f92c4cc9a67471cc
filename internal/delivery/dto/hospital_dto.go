package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateHospitalRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=255"`
	Address        string `json:"address" validate:"required"`
	City           string `json:"city" validate:"required,max=100"`
	State          string `json:"state" validate:"required,max=100"`
	Specialty      string `json:"specialty" validate:"required,max=100"`
	BedTotal       int    `json:"bed_total" validate:"required,gte=0"`
	BedAvailable   int    `json:"bed_available" validate:"gte=0"`
	IsICUAvailable bool   `json:"is_icu_available"`
	ICUTotal       int    `json:"icu_total" validate:"gte=0"`
	ICUAvailable   int    `json:"icu_available" validate:"gte=0"`
	Phone          string `json:"phone" validate:"required,min=10,max=20"`
	Email          string `json:"email" validate:"required,email"`
	Image          string `json:"image" validate:"omitempty,url"`
	Established    string `json:"established" validate:"omitempty"` // Format: YYYY-MM-DD
}

type UpdateHospitalRequest struct {
	Name           string `json:"name" validate:"omitempty,min=2,max=255"`
	Address        string `json:"address" validate:"omitempty"`
	City           string `json:"city" validate:"omitempty,max=100"`
	State          string `json:"state" validate:"omitempty,max=100"`
	Specialty      string `json:"specialty" validate:"omitempty,max=100"`
	BedTotal       *int   `json:"bed_total" validate:"omitempty,gte=0"`
	BedAvailable   *int   `json:"bed_available" validate:"omitempty,gte=0"`
	IsICUAvailable *bool  `json:"is_icu_available" validate:"omitempty"`
	ICUTotal       *int   `json:"icu_total" validate:"omitempty,gte=0"`
	ICUAvailable   *int   `json:"icu_available" validate:"omitempty,gte=0"`
	Phone          string `json:"phone" validate:"omitempty,min=10,max=20"`
	Email          string `json:"email" validate:"omitempty,email"`
	Image          string `json:"image" validate:"omitempty,url"`
}

// SearchHospitalQuery carries the query string filters for discovery.
type SearchHospitalQuery struct {
	Name      string `json:"name"`
	City      string `json:"city"`
	State     string `json:"state"`
	Specialty string `json:"specialty"`
}

// Response DTOs

type HospitalResponse struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	Address        string           `json:"address"`
	City           string           `json:"city"`
	State          string           `json:"state"`
	Specialty      string           `json:"specialty"`
	BedTotal       int              `json:"bed_total"`
	BedAvailable   int              `json:"bed_available"`
	IsICUAvailable bool             `json:"is_icu_available"`
	ICUTotal       int              `json:"icu_total"`
	ICUAvailable   int              `json:"icu_available"`
	Phone          string           `json:"phone"`
	Email          string           `json:"email"`
	Image          string           `json:"image,omitempty"`
	Rating         decimal.Decimal  `json:"rating"`
	Established    string           `json:"established,omitempty"`
	Departments    []string         `json:"departments,omitempty"`
	Staff          []DoctorResponse `json:"staff,omitempty"`
}

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	Total     int                `json:"total"`
}
