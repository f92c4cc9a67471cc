package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	HospitalID      uuid.UUID `json:"hospital_id" validate:"required"`
	Department      string    `json:"department" validate:"required,max=100"`
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	AppointmentDate string    `json:"appointment_date" validate:"required"` // Format: YYYY-MM-DD
	TimeSlotID      int       `json:"time_slot_id" validate:"required,min=1"`
	Reason          string    `json:"reason" validate:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CompleteAppointmentRequest struct {
	Diagnosis    string `json:"diagnosis" validate:"omitempty"`
	Prescription string `json:"prescription" validate:"omitempty"`
}

type ReviewAppointmentRequest struct {
	Review string `json:"review" validate:"omitempty"`
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID         `json:"id"`
	PatientID       uuid.UUID         `json:"patient_id"`
	PatientName     string            `json:"patient_name,omitempty"`
	DoctorID        uuid.UUID         `json:"doctor_id"`
	DoctorName      string            `json:"doctor_name,omitempty"`
	HospitalID      uuid.UUID         `json:"hospital_id"`
	HospitalName    string            `json:"hospital_name,omitempty"`
	AppointmentDate string            `json:"appointment_date"`
	TimeSlot        *TimeSlotResponse `json:"time_slot,omitempty"`
	Status          string            `json:"status"`
	Reason          string            `json:"reason"`
	Diagnosis       string            `json:"diagnosis,omitempty"`
	Prescription    string            `json:"prescription,omitempty"`
	Review          string            `json:"review,omitempty"`
	Rating          int               `json:"rating,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
