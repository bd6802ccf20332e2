package repository

import (
	"healthcare-first-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	FindByProvider(db *gorm.DB, providerID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindByPatient(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	UpdateStatus(db *gorm.DB, id int, status entity.AppointmentStatus, notes string) error
	CountByProviderAndStatus(db *gorm.DB, providerID uuid.UUID) (map[string]int64, error)
}
