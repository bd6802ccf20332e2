package repository

import (
	"errors"
	"time"

	"healthcare-first-portal/internal/domain/entity"
	domainRepo "healthcare-first-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentSlotRepository struct{}

func NewAppointmentSlotRepository() domainRepo.AppointmentSlotRepository {
	return &appointmentSlotRepository{}
}

func (r *appointmentSlotRepository) Create(db *gorm.DB, slot *entity.AppointmentSlot) error {
	return db.Create(slot).Error
}

func (r *appointmentSlotRepository) FindByID(db *gorm.DB, id int) (*entity.AppointmentSlot, error) {
	var slot entity.AppointmentSlot
	err := db.Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

// FindByIDForUpdate locks the slot row until the surrounding transaction
// ends, serializing concurrent booking attempts on the same slot.
func (r *appointmentSlotRepository) FindByIDForUpdate(db *gorm.DB, id int) (*entity.AppointmentSlot, error) {
	var slot entity.AppointmentSlot
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *appointmentSlotRepository) FindByWindowForUpdate(db *gorm.DB, providerID uuid.UUID, date time.Time, startTime, endTime string) (*entity.AppointmentSlot, error) {
	var slot entity.AppointmentSlot
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("provider_id = ? AND date = ? AND start_time = ? AND end_time = ?",
			providerID, date.Format("2006-01-02"), startTime, endTime).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *appointmentSlotRepository) FindByProviderAndDate(db *gorm.DB, providerID uuid.UUID, date time.Time) ([]entity.AppointmentSlot, error) {
	var slots []entity.AppointmentSlot
	err := db.Where("provider_id = ? AND date = ?", providerID, date.Format("2006-01-02")).
		Order("start_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// FindActiveConflicts returns active slots whose window overlaps
// [startTime, endTime) on the given date, excluding excludeSlotID when > 0.
// Touching windows are not conflicts.
func (r *appointmentSlotRepository) FindActiveConflicts(db *gorm.DB, providerID uuid.UUID, date time.Time, startTime, endTime string, excludeSlotID int) ([]entity.AppointmentSlot, error) {
	query := db.Where("provider_id = ? AND date = ? AND is_active = ?", providerID, date.Format("2006-01-02"), true).
		Where("NOT (end_time <= ? OR start_time >= ?)", startTime, endTime)

	if excludeSlotID > 0 {
		query = query.Where("id != ?", excludeSlotID)
	}

	var slots []entity.AppointmentSlot
	if err := query.Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *appointmentSlotRepository) FindByProvider(db *gorm.DB, providerID uuid.UUID, filter *entity.SlotFilter) ([]entity.AppointmentSlot, error) {
	query := db.Where("provider_id = ?", providerID).
		Order("date ASC, start_time ASC")

	if filter != nil {
		if filter.StartDate != "" && filter.EndDate != "" {
			query = query.Where("date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
		}
		switch filter.Status {
		case "available":
			query = query.Where("is_active = ? AND is_booked = ?", true, false)
		case "booked":
			query = query.Where("is_booked = ?", true)
		}
	}

	var slots []entity.AppointmentSlot
	if err := query.Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *appointmentSlotRepository) FindAvailable(db *gorm.DB, providerID uuid.UUID, startDate, endDate string) ([]entity.AppointmentSlot, error) {
	query := db.Where("provider_id = ? AND is_active = ? AND is_booked = ?", providerID, true, false).
		Order("date ASC, start_time ASC")

	if startDate != "" && endDate != "" {
		query = query.Where("date BETWEEN ? AND ?", startDate, endDate)
	}

	var slots []entity.AppointmentSlot
	if err := query.Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *appointmentSlotRepository) Update(db *gorm.DB, slot *entity.AppointmentSlot) error {
	return db.Omit("Provider", "Appointment").Save(slot).Error
}

func (r *appointmentSlotRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.AppointmentSlot{})
	return result.RowsAffected, result.Error
}
