package entity

import (
	"time"

	"healthcare-first-portal/internal/scheduling"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AppointmentType enumerates the kinds of visit a slot can be authored for
type AppointmentType string

const (
	AppointmentTypeConsultation           AppointmentType = "consultation"
	AppointmentTypeFollowUp               AppointmentType = "follow_up"
	AppointmentTypeEmergency              AppointmentType = "emergency"
	AppointmentTypeRoutineCheckup         AppointmentType = "routine_checkup"
	AppointmentTypeSpecialistConsultation AppointmentType = "specialist_consultation"
)

// LocationType enumerates where an appointment takes place
type LocationType string

const (
	LocationTypeInPerson  LocationType = "in_person"
	LocationTypeVirtual   LocationType = "virtual"
	LocationTypeHomeVisit LocationType = "home_visit"
)

// Recurrence enumerates how an authored slot repeats
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// AppointmentSlot is a concrete, dated, timed bookable unit. It is either
// authored directly by a provider or materialized on demand from a weekly
// availability window at the moment of a time-based booking.
type AppointmentSlot struct {
	ID                int              `gorm:"primaryKey;autoIncrement" json:"id"`
	ProviderID        uuid.UUID        `gorm:"type:uuid;not null;index:idx_slot_provider_date" json:"provider_id"`
	Date              time.Time        `gorm:"type:date;not null;index:idx_slot_provider_date" json:"date"`
	StartTime         string           `gorm:"type:time;not null" json:"start_time"`
	EndTime           string           `gorm:"type:time;not null" json:"end_time"`
	Timezone          string           `gorm:"type:varchar(50);not null;default:'UTC'" json:"timezone"`
	AppointmentType   AppointmentType  `gorm:"type:varchar(30);not null" json:"appointment_type"`
	SlotDuration      int              `gorm:"not null" json:"slot_duration"`
	BreakDuration     int              `gorm:"not null;default:0" json:"break_duration"`
	MaxAppointments   int              `gorm:"not null;default:1" json:"max_appointments"`
	LocationType      LocationType     `gorm:"type:varchar(20);not null" json:"location_type"`
	LocationAddress   string           `gorm:"type:varchar(255)" json:"location_address,omitempty"`
	RoomNumber        string           `gorm:"type:varchar(50)" json:"room_number,omitempty"`
	Fee               *decimal.Decimal `gorm:"type:decimal(10,2)" json:"fee,omitempty"`
	Currency          string           `gorm:"type:char(3);not null;default:'USD'" json:"currency"`
	InsuranceAccepted bool             `gorm:"not null;default:false" json:"insurance_accepted"`
	Notes             string           `gorm:"type:text" json:"notes,omitempty"`
	Recurrence        Recurrence       `gorm:"type:varchar(10);not null;default:'none'" json:"recurrence"`
	RecurrenceEndDate *time.Time       `gorm:"type:date" json:"recurrence_end_date,omitempty"`
	IsActive          bool             `gorm:"not null;default:true" json:"is_active"`
	IsBooked          bool             `gorm:"not null;default:false" json:"is_booked"`
	CreatedAt         time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Provider    Provider     `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:SlotID" json:"appointment,omitempty"`
}

func (AppointmentSlot) TableName() string {
	return "appointment_slots"
}

// AfterFind rewrites the TIME column values to the "HH:MM" form the
// scheduling logic and JSON responses expect; Postgres reads them back
// as "HH:MM:SS".
func (s *AppointmentSlot) AfterFind(*gorm.DB) error {
	s.StartTime = scheduling.NormalizeClock(s.StartTime)
	s.EndTime = scheduling.NormalizeClock(s.EndTime)
	return nil
}

// Window returns the slot's time-of-day window as (start, end)
func (s *AppointmentSlot) Window() (string, string) {
	return s.StartTime, s.EndTime
}

// AppointmentTypeNames maps appointment types to display labels
func AppointmentTypeNames() map[AppointmentType]string {
	return map[AppointmentType]string{
		AppointmentTypeConsultation:           "Consultation",
		AppointmentTypeFollowUp:               "Follow-up",
		AppointmentTypeEmergency:              "Emergency",
		AppointmentTypeRoutineCheckup:         "Routine Checkup",
		AppointmentTypeSpecialistConsultation: "Specialist Consultation",
	}
}

// LocationTypeNames maps location types to display labels
func LocationTypeNames() map[LocationType]string {
	return map[LocationType]string{
		LocationTypeInPerson:  "In Person",
		LocationTypeVirtual:   "Virtual",
		LocationTypeHomeVisit: "Home Visit",
	}
}

// RecurrenceNames maps recurrence options to display labels
func RecurrenceNames() map[Recurrence]string {
	return map[Recurrence]string{
		RecurrenceNone:    "No Recurrence",
		RecurrenceDaily:   "Daily",
		RecurrenceWeekly:  "Weekly",
		RecurrenceMonthly: "Monthly",
	}
}
