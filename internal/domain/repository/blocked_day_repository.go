package repository

import (
	"time"

	"healthcare-first-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlockedDayRepository interface {
	Create(db *gorm.DB, blockedDay *entity.BlockedDay) error
	FindByID(db *gorm.DB, providerID uuid.UUID, id int) (*entity.BlockedDay, error)
	FindByProvider(db *gorm.DB, providerID uuid.UUID, startDate, endDate string) ([]entity.BlockedDay, error)
	FindByProviderAndDate(db *gorm.DB, providerID uuid.UUID, date time.Time) (*entity.BlockedDay, error)
	Update(db *gorm.DB, blockedDay *entity.BlockedDay) error
	Delete(db *gorm.DB, id int) (int64, error)
}
