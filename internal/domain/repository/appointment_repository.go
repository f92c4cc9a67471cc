package repository

import (
	"time"

	"healthnet-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.Appointment, error)
	FindForDoctorOnDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	FindActiveBySlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, timeSlotID int) (*entity.Appointment, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error)
	CancelAllForDoctor(db *gorm.DB, doctorID uuid.UUID) (int64, error)
}
