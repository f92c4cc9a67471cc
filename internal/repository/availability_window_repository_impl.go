package repository

import (
	"errors"

	"healthnet-api/internal/domain/entity"
	domainRepo "healthnet-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type availabilityWindowRepository struct{}

func NewAvailabilityWindowRepository() domainRepo.AvailabilityWindowRepository {
	return &availabilityWindowRepository{}
}

func (r *availabilityWindowRepository) Create(db *gorm.DB, window *entity.AvailabilityWindow) error {
	return db.Create(window).Error
}

func (r *availabilityWindowRepository) FindByID(db *gorm.DB, id int) (*entity.AvailabilityWindow, error) {
	var window entity.AvailabilityWindow
	err := db.Where("id = ?", id).First(&window).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &window, nil
}

// FindByDoctorID returns a doctor's windows in their original creation
// order, ties broken by start time ascending. The slot resolver depends
// on this ordering.
func (r *availabilityWindowRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.AvailabilityWindow, error) {
	var windows []entity.AvailabilityWindow
	err := db.Where("doctor_id = ?", doctorID).Order("id ASC, start_time ASC").Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *availabilityWindowRepository) FindByDoctorAndDay(db *gorm.DB, doctorID uuid.UUID, dayOfWeek string) ([]entity.AvailabilityWindow, error) {
	var windows []entity.AvailabilityWindow
	err := db.Where("doctor_id = ? AND LOWER(day_of_week) = LOWER(?)", doctorID, dayOfWeek).
		Order("start_time ASC").
		Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *availabilityWindowRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.AvailabilityWindow{})
	return result.RowsAffected, result.Error
}

func (r *availabilityWindowRepository) DeleteByDoctorID(db *gorm.DB, doctorID uuid.UUID) (int64, error) {
	result := db.Where("doctor_id = ?", doctorID).Delete(&entity.AvailabilityWindow{})
	return result.RowsAffected, result.Error
}
