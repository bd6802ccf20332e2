package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled   AppointmentStatus = "scheduled"
	AppointmentStatusArrived     AppointmentStatus = "arrived"
	AppointmentStatusInProgress  AppointmentStatus = "in_progress"
	AppointmentStatusCompleted   AppointmentStatus = "completed"
	AppointmentStatusCanceled    AppointmentStatus = "canceled"
	AppointmentStatusNoShow      AppointmentStatus = "no_show"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
)

// AppointmentStatuses lists every valid status value
func AppointmentStatuses() []AppointmentStatus {
	return []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusArrived,
		AppointmentStatusInProgress,
		AppointmentStatusCompleted,
		AppointmentStatusCanceled,
		AppointmentStatusNoShow,
		AppointmentStatusRescheduled,
	}
}

// IsValidAppointmentStatus reports whether s is a known status value
func IsValidAppointmentStatus(s AppointmentStatus) bool {
	for _, v := range AppointmentStatuses() {
		if v == s {
			return true
		}
	}
	return false
}

// Appointment records a patient's reservation of exactly one slot.
// The unique constraint on slot_id enforces at-most-one booking per slot;
// slot_id never changes after creation.
type Appointment struct {
	ID         int               `gorm:"primaryKey;autoIncrement" json:"id"`
	SlotID     int               `gorm:"not null;uniqueIndex" json:"slot_id"`
	ProviderID uuid.UUID         `gorm:"type:uuid;not null;index" json:"provider_id"`
	PatientID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	Status     AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Notes      string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Slot     AppointmentSlot `gorm:"foreignKey:SlotID" json:"slot,omitempty"`
	Provider Provider        `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	Patient  Patient         `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
