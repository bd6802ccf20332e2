package repository

import (
	"errors"

	"healthcare-first-portal/internal/domain/entity"
	domainRepo "healthcare-first-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type providerRepository struct{}

func NewProviderRepository() domainRepo.ProviderRepository {
	return &providerRepository{}
}

func (r *providerRepository) Create(db *gorm.DB, provider *entity.Provider) error {
	return db.Create(provider).Error
}

func (r *providerRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Provider, error) {
	var provider entity.Provider
	err := db.Where("id = ?", id).First(&provider).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &provider, nil
}

func (r *providerRepository) FindByEmail(db *gorm.DB, email string) (*entity.Provider, error) {
	var provider entity.Provider
	err := db.Where("email = ?", email).First(&provider).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &provider, nil
}

func (r *providerRepository) FindApproved(db *gorm.DB) ([]entity.Provider, error) {
	var providers []entity.Provider
	err := db.Where("status = ?", entity.ProviderStatusApproved).
		Order("last_name ASC").
		Find(&providers).Error
	if err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *providerRepository) Update(db *gorm.DB, provider *entity.Provider) error {
	return db.Omit("Availabilities", "BlockedDays", "Slots").Save(provider).Error
}
