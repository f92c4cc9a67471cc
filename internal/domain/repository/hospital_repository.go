package repository

import (
	"healthnet-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HospitalRepository interface {
	Create(db *gorm.DB, hospital *entity.Hospital) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Hospital, error)
	FindByIDWithStaff(db *gorm.DB, id uuid.UUID) (*entity.Hospital, error)
	FindAll(db *gorm.DB, filter *entity.HospitalFilter) ([]entity.Hospital, error)
	Update(db *gorm.DB, hospital *entity.Hospital) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
