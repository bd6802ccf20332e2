package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookSlotRequest struct {
	SlotID int `json:"slot_id" validate:"required,gt=0"`
}

type BookByTimeRequest struct {
	ProviderID uuid.UUID `json:"provider_id" validate:"required"`
	Date       string    `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime  string    `json:"start_time" validate:"required,datetime=15:04"`
	EndTime    string    `json:"end_time" validate:"required,datetime=15:04"`
}

type GenerateSlotsRequest struct {
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	SlotDuration int    `json:"slot_duration" validate:"omitempty,gte=10,lte=240"`
}

// Response DTOs

// ProviderSummaryResponse is the directory entry shown to patients
type ProviderSummaryResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization,omitempty"`
	ClinicName     string    `json:"clinic_name,omitempty"`
	Location       string    `json:"location,omitempty"`
}

type ProviderDirectoryResponse struct {
	Providers []ProviderSummaryResponse `json:"providers"`
	Total     int                       `json:"total"`
}

// GeneratedSlotResponse is a candidate window expanded from weekly
// availability; ExistingSlotID is set when an unbooked explicit slot
// already covers the window.
type GeneratedSlotResponse struct {
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Timezone       string `json:"timezone"`
	IsBooked       bool   `json:"is_booked"`
	ExistingSlotID *int   `json:"existing_slot_id,omitempty"`
}

type GeneratedSlotListResponse struct {
	Slots []GeneratedSlotResponse `json:"slots"`
}

type AppointmentResponse struct {
	ID         int           `json:"id"`
	SlotID     int           `json:"slot_id"`
	ProviderID uuid.UUID     `json:"provider_id"`
	PatientID  uuid.UUID     `json:"patient_id"`
	Status     string        `json:"status"`
	Notes      string        `json:"notes,omitempty"`
	Slot       *SlotResponse `json:"slot,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

type BookingResponse struct {
	Appointment AppointmentResponse `json:"appointment"`
}
