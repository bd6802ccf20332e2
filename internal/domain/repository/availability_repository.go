package repository

import (
	"healthcare-first-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	FindByProvider(db *gorm.DB, providerID uuid.UUID) ([]entity.ProviderAvailability, error)
	FindByProviderAndDay(db *gorm.DB, providerID uuid.UUID, dayOfWeek string) (*entity.ProviderAvailability, error)
	Upsert(db *gorm.DB, availability *entity.ProviderAvailability) error
	DeleteByProviderAndDay(db *gorm.DB, providerID uuid.UUID, dayOfWeek string) error
}
