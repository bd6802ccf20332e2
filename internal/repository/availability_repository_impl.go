package repository

import (
	"errors"

	"healthcare-first-portal/internal/domain/entity"
	domainRepo "healthcare-first-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type availabilityRepository struct{}

func NewAvailabilityRepository() domainRepo.AvailabilityRepository {
	return &availabilityRepository{}
}

func (r *availabilityRepository) FindByProvider(db *gorm.DB, providerID uuid.UUID) ([]entity.ProviderAvailability, error) {
	var availabilities []entity.ProviderAvailability
	err := db.Where("provider_id = ?", providerID).
		Order("day_of_week ASC").
		Find(&availabilities).Error
	if err != nil {
		return nil, err
	}
	return availabilities, nil
}

func (r *availabilityRepository) FindByProviderAndDay(db *gorm.DB, providerID uuid.UUID, dayOfWeek string) (*entity.ProviderAvailability, error) {
	var availability entity.ProviderAvailability
	err := db.Where("provider_id = ? AND day_of_week = ?", providerID, dayOfWeek).
		First(&availability).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &availability, nil
}

// Upsert inserts or replaces the window keyed by (provider_id, day_of_week)
func (r *availabilityRepository) Upsert(db *gorm.DB, availability *entity.ProviderAvailability) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "provider_id"}, {Name: "day_of_week"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"start_time", "end_time", "timezone", "is_active", "updated_at",
		}),
	}).Create(availability).Error
}

func (r *availabilityRepository) DeleteByProviderAndDay(db *gorm.DB, providerID uuid.UUID, dayOfWeek string) error {
	return db.Where("provider_id = ? AND day_of_week = ?", providerID, dayOfWeek).
		Delete(&entity.ProviderAvailability{}).Error
}
