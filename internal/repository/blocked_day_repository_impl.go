package repository

import (
	"errors"
	"time"

	"healthcare-first-portal/internal/domain/entity"
	domainRepo "healthcare-first-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type blockedDayRepository struct{}

func NewBlockedDayRepository() domainRepo.BlockedDayRepository {
	return &blockedDayRepository{}
}

func (r *blockedDayRepository) Create(db *gorm.DB, blockedDay *entity.BlockedDay) error {
	return db.Create(blockedDay).Error
}

func (r *blockedDayRepository) FindByID(db *gorm.DB, providerID uuid.UUID, id int) (*entity.BlockedDay, error) {
	var blockedDay entity.BlockedDay
	err := db.Where("id = ? AND provider_id = ?", id, providerID).First(&blockedDay).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blockedDay, nil
}

func (r *blockedDayRepository) FindByProvider(db *gorm.DB, providerID uuid.UUID, startDate, endDate string) ([]entity.BlockedDay, error) {
	query := db.Where("provider_id = ?", providerID).Order("date ASC")
	if startDate != "" && endDate != "" {
		query = query.Where("date BETWEEN ? AND ?", startDate, endDate)
	}

	var blockedDays []entity.BlockedDay
	if err := query.Find(&blockedDays).Error; err != nil {
		return nil, err
	}
	return blockedDays, nil
}

func (r *blockedDayRepository) FindByProviderAndDate(db *gorm.DB, providerID uuid.UUID, date time.Time) (*entity.BlockedDay, error) {
	var blockedDay entity.BlockedDay
	err := db.Where("provider_id = ? AND date = ?", providerID, date.Format("2006-01-02")).
		First(&blockedDay).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blockedDay, nil
}

func (r *blockedDayRepository) Update(db *gorm.DB, blockedDay *entity.BlockedDay) error {
	return db.Omit("Provider").Save(blockedDay).Error
}

func (r *blockedDayRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.BlockedDay{})
	return result.RowsAffected, result.Error
}
