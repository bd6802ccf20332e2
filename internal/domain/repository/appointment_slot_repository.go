package repository

import (
	"time"

	"healthcare-first-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentSlotRepository interface {
	Create(db *gorm.DB, slot *entity.AppointmentSlot) error
	FindByID(db *gorm.DB, id int) (*entity.AppointmentSlot, error)
	// FindByIDForUpdate takes a pessimistic row lock; call inside a transaction.
	FindByIDForUpdate(db *gorm.DB, id int) (*entity.AppointmentSlot, error)
	// FindByWindowForUpdate locks the slot matching the exact
	// (provider, date, start, end) window; call inside a transaction.
	FindByWindowForUpdate(db *gorm.DB, providerID uuid.UUID, date time.Time, startTime, endTime string) (*entity.AppointmentSlot, error)
	FindByProviderAndDate(db *gorm.DB, providerID uuid.UUID, date time.Time) ([]entity.AppointmentSlot, error)
	FindActiveConflicts(db *gorm.DB, providerID uuid.UUID, date time.Time, startTime, endTime string, excludeSlotID int) ([]entity.AppointmentSlot, error)
	FindByProvider(db *gorm.DB, providerID uuid.UUID, filter *entity.SlotFilter) ([]entity.AppointmentSlot, error)
	FindAvailable(db *gorm.DB, providerID uuid.UUID, startDate, endDate string) ([]entity.AppointmentSlot, error)
	Update(db *gorm.DB, slot *entity.AppointmentSlot) error
	Delete(db *gorm.DB, id int) (int64, error)
}
