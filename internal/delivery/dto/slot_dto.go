package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateSlotRequest struct {
	Date              string           `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime         string           `json:"start_time" validate:"required,datetime=15:04"`
	EndTime           string           `json:"end_time" validate:"required,datetime=15:04"`
	Timezone          string           `json:"timezone" validate:"required,max=50"`
	AppointmentType   string           `json:"appointment_type" validate:"required,oneof=consultation follow_up emergency routine_checkup specialist_consultation"`
	SlotDuration      int              `json:"slot_duration" validate:"required,gte=15,lte=480"`
	BreakDuration     int              `json:"break_duration" validate:"omitempty,gte=0,lte=120"`
	MaxAppointments   int              `json:"max_appointments" validate:"required,gte=1,lte=10"`
	LocationType      string           `json:"location_type" validate:"required,oneof=in_person virtual home_visit"`
	LocationAddress   string           `json:"location_address" validate:"omitempty,max=255"`
	RoomNumber        string           `json:"room_number" validate:"omitempty,max=50"`
	Fee               *decimal.Decimal `json:"fee" validate:"omitempty"`
	Currency          string           `json:"currency" validate:"omitempty,len=3"`
	InsuranceAccepted bool             `json:"insurance_accepted"`
	Notes             string           `json:"notes" validate:"omitempty,max=1000"`
	Recurrence        string           `json:"recurrence" validate:"required,oneof=none daily weekly monthly"`
	RecurrenceEndDate string           `json:"recurrence_end_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateSlotRequest struct {
	Date              string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime         string           `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime           string           `json:"end_time" validate:"omitempty,datetime=15:04"`
	Timezone          string           `json:"timezone" validate:"omitempty,max=50"`
	AppointmentType   string           `json:"appointment_type" validate:"omitempty,oneof=consultation follow_up emergency routine_checkup specialist_consultation"`
	SlotDuration      *int             `json:"slot_duration" validate:"omitempty,gte=15,lte=480"`
	BreakDuration     *int             `json:"break_duration" validate:"omitempty,gte=0,lte=120"`
	MaxAppointments   *int             `json:"max_appointments" validate:"omitempty,gte=1,lte=10"`
	LocationType      string           `json:"location_type" validate:"omitempty,oneof=in_person virtual home_visit"`
	LocationAddress   string           `json:"location_address" validate:"omitempty,max=255"`
	RoomNumber        string           `json:"room_number" validate:"omitempty,max=50"`
	Fee               *decimal.Decimal `json:"fee" validate:"omitempty"`
	Currency          string           `json:"currency" validate:"omitempty,len=3"`
	InsuranceAccepted *bool            `json:"insurance_accepted"`
	Notes             string           `json:"notes" validate:"omitempty,max=1000"`
	IsActive          *bool            `json:"is_active"`
}

type ListSlotsRequest struct {
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status    string `json:"status" validate:"omitempty,oneof=available booked"`
}

// Response DTOs

type SlotResponse struct {
	ID                int                      `json:"id"`
	ProviderID        uuid.UUID                `json:"provider_id"`
	Provider          *ProviderSummaryResponse `json:"provider,omitempty"`
	Date              string                   `json:"date"`
	StartTime         string                   `json:"start_time"`
	EndTime           string                   `json:"end_time"`
	Timezone          string                   `json:"timezone"`
	AppointmentType   string                   `json:"appointment_type"`
	SlotDuration      int                      `json:"slot_duration"`
	BreakDuration     int                      `json:"break_duration"`
	MaxAppointments   int                      `json:"max_appointments"`
	LocationType      string                   `json:"location_type"`
	LocationAddress   string                   `json:"location_address,omitempty"`
	RoomNumber        string                   `json:"room_number,omitempty"`
	Fee               *decimal.Decimal         `json:"fee,omitempty"`
	Currency          string                   `json:"currency"`
	InsuranceAccepted bool                     `json:"insurance_accepted"`
	Notes             string                   `json:"notes,omitempty"`
	Recurrence        string                   `json:"recurrence"`
	RecurrenceEndDate string                   `json:"recurrence_end_date,omitempty"`
	IsActive          bool                     `json:"is_active"`
	IsBooked          bool                     `json:"is_booked"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
}

type SlotListResponse struct {
	Slots              []SlotResponse    `json:"slots"`
	Total              int               `json:"total"`
	AppointmentTypes   map[string]string `json:"appointment_types,omitempty"`
	LocationTypes      map[string]string `json:"location_types,omitempty"`
	RecurrenceOptions  map[string]string `json:"recurrence_options,omitempty"`
}

// CreateSlotResponse reports the authored slot plus how many recurrence
// occurrences were materialized and how many were skipped over conflicts.
type CreateSlotResponse struct {
	Slot               SlotResponse `json:"slot"`
	OccurrencesCreated int          `json:"occurrences_created,omitempty"`
	OccurrencesSkipped int          `json:"occurrences_skipped,omitempty"`
}
