package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateTimeSlotRequest struct {
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	DayOfWeek string    `json:"day_of_week" validate:"required"`
	StartTime string    `json:"start_time" validate:"required"` // Format: HH:mm
	EndTime   string    `json:"end_time" validate:"required"`   // Format: HH:mm
}

// Response DTOs

type TimeSlotResponse struct {
	ID        int       `json:"id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	DayOfWeek string    `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type TimeSlotListResponse struct {
	TimeSlots []TimeSlotResponse `json:"time_slots"`
	Total     int                `json:"total"`
}

// AvailableSlotsResponse is the resolved set of open slots for one doctor
// on one calendar date.
type AvailableSlotsResponse struct {
	DoctorID uuid.UUID          `json:"doctor_id"`
	Date     string             `json:"date"`
	Slots    []TimeSlotResponse `json:"slots"`
	Total    int                `json:"total"`
}
