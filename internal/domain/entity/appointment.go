package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the closed set of appointment lifecycle states.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// statusScheduledAlias is a legacy display alias for the initial state.
// It is accepted on input and normalized to pending, never stored.
const statusScheduledAlias = "scheduled"

// statusTransitions is the explicit forward transition table:
// pending -> confirmed -> completed, with cancellation reachable from any
// non-terminal state. Completed and cancelled are terminal.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:   {AppointmentStatusConfirmed, AppointmentStatusCancelled},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusCancelled},
	AppointmentStatusCompleted: {},
	AppointmentStatusCancelled: {},
}

// NormalizeStatus maps raw input to a canonical status. The "scheduled"
// alias normalizes to pending. Returns false for unknown values.
func NormalizeStatus(raw string) (AppointmentStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(AppointmentStatusPending), statusScheduledAlias:
		return AppointmentStatusPending, true
	case string(AppointmentStatusConfirmed):
		return AppointmentStatusConfirmed, true
	case string(AppointmentStatusCompleted):
		return AppointmentStatusCompleted, true
	case string(AppointmentStatusCancelled):
		return AppointmentStatusCancelled, true
	default:
		return "", false
	}
}

// CanTransitionTo reports whether moving from s to target is legal.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s AppointmentStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

// Appointment represents a confirmed pairing of a patient with a doctor's
// availability window on a concrete calendar date. Appointments are never
// physically deleted; cancellation is a soft-terminal status.
//
// At most one non-cancelled appointment may exist per
// (doctor_id, appointment_date, time_slot_id) triple; a partial unique
// index enforces this at the storage layer.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	HospitalID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"hospital_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	TimeSlotID      int               `gorm:"not null;index" json:"time_slot_id"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Reason          string            `gorm:"type:text;not null" json:"reason"`
	Diagnosis       string            `gorm:"type:text" json:"diagnosis,omitempty"`
	Prescription    string            `gorm:"type:text" json:"prescription,omitempty"`
	Review          string            `gorm:"type:text" json:"review,omitempty"`
	Rating          int               `gorm:"default:0" json:"rating,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient  PatientProfile     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor   DoctorProfile      `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Hospital Hospital           `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	TimeSlot AvailabilityWindow `gorm:"foreignKey:TimeSlotID" json:"time_slot,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is awaiting confirmation
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsCancelled checks if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsCompleted checks if the appointment has been completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}
