package repository

import (
	"healthnet-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(db *gorm.DB, message *entity.Message) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Message, error)
	FindConversation(db *gorm.DB, userA, userB uuid.UUID) ([]entity.Message, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
