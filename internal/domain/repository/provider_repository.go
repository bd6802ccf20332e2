package repository

import (
	"healthcare-first-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProviderRepository interface {
	Create(db *gorm.DB, provider *entity.Provider) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Provider, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Provider, error)
	FindApproved(db *gorm.DB) ([]entity.Provider, error)
	Update(db *gorm.DB, provider *entity.Provider) error
}
