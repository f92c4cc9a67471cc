package repository

import (
	"errors"
	"time"

	"healthnet-api/internal/domain/entity"
	domainRepo "healthnet-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// listOrder is the patient-facing chronological order: ascending by
// appointment date, ties by status then creation order.
const listOrder = "appointment_date ASC, status ASC, created_at ASC"

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Preload("Hospital").
		Preload("Doctor.User").
		Preload("TimeSlot").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Preload("Hospital").
		Preload("Doctor.User").
		Preload("TimeSlot").
		Where("patient_id = ?", patientID).
		Order(listOrder).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Preload("Patient.User").
		Preload("TimeSlot").
		Where("doctor_id = ?", doctorID).
		Order(listOrder).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindByHospitalID expands doctor, patient and hospital details for the
// hospital-facing dashboard listing.
func (r *appointmentRepository) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Preload("Patient.User").
		Preload("Doctor.User").
		Preload("Hospital").
		Preload("TimeSlot").
		Where("hospital_id = ?", hospitalID).
		Order(listOrder).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindForDoctorOnDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Where("doctor_id = ? AND appointment_date = ?", doctorID, date.Format("2006-01-02")).
		Order(listOrder).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindActiveBySlot returns the non-cancelled occupant of a
// (doctor, date, slot) triple, if any.
func (r *appointmentRepository) FindActiveBySlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, timeSlotID int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Where("doctor_id = ? AND appointment_date = ? AND time_slot_id = ? AND status != ?",
			doctorID, date.Format("2006-01-02"), timeSlotID, entity.AppointmentStatusCancelled).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// UpdateStatus performs a conditional transition: the row is updated only
// if it is still in the expected source status. Affected rows: 1 = moved,
// 0 = the status changed underneath the caller.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

// CancelAllForDoctor cancels every non-terminal appointment of a doctor.
// Used when a doctor leaves so in-flight appointments are orphan-protected
// rather than deleted.
func (r *appointmentRepository) CancelAllForDoctor(db *gorm.DB, doctorID uuid.UUID) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND status IN ?", doctorID,
			[]entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed}).
		Update("status", entity.AppointmentStatusCancelled)
	return result.RowsAffected, result.Error
}
