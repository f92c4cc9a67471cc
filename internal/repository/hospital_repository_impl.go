package repository

import (
	"errors"

	"healthnet-api/internal/domain/entity"
	domainRepo "healthnet-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type hospitalRepository struct{}

func NewHospitalRepository() domainRepo.HospitalRepository {
	return &hospitalRepository{}
}

func (r *hospitalRepository) Create(db *gorm.DB, hospital *entity.Hospital) error {
	return db.Create(hospital).Error
}

func (r *hospitalRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Hospital, error) {
	var hospital entity.Hospital
	err := db.Where("id = ?", id).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) FindByIDWithStaff(db *gorm.DB, id uuid.UUID) (*entity.Hospital, error) {
	var hospital entity.Hospital
	err := db.
		Preload("Staff.User").
		Preload("Staff.TimeSlots", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("availability_windows.start_time ASC, availability_windows.id ASC")
		}).
		Where("id = ?", id).
		First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}

// FindAll applies the directory filters inside the query so callers never
// fetch-all-then-filter in memory.
func (r *hospitalRepository) FindAll(db *gorm.DB, filter *entity.HospitalFilter) ([]entity.Hospital, error) {
	var hospitals []entity.Hospital
	query := db
	if filter != nil {
		if filter.Name != "" {
			query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
		}
		if filter.City != "" {
			query = query.Where("city ILIKE ?", "%"+filter.City+"%")
		}
		if filter.State != "" {
			query = query.Where("state ILIKE ?", "%"+filter.State+"%")
		}
		if filter.Specialty != "" {
			query = query.Where("specialty ILIKE ?", "%"+filter.Specialty+"%")
		}
	}
	err := query.Order("name ASC").Find(&hospitals).Error
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (r *hospitalRepository) Update(db *gorm.DB, hospital *entity.Hospital) error {
	return db.Omit("Staff").Save(hospital).Error
}

func (r *hospitalRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Hospital{})
	return result.RowsAffected, result.Error
}
