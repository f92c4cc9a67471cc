package entity

import "github.com/google/uuid"

// AppointmentFilter is a domain-level filter for querying appointments.
// Filtering happens at the data-access boundary so callers never refetch
// and filter in memory.
type AppointmentFilter struct {
	PatientID        uuid.UUID // uuid.Nil = unset
	DoctorID         uuid.UUID
	HospitalID       uuid.UUID
	Date             string // Format: YYYY-MM-DD
	ExcludeCancelled bool
}
