package entity

// SlotFilter is a domain-level filter for querying appointment slots.
// Used by repository layer to avoid coupling with delivery DTOs.
type SlotFilter struct {
	StartDate string // Format: YYYY-MM-DD
	EndDate   string // Format: YYYY-MM-DD
	Status    string // "available" or "booked"
}

// AppointmentFilter narrows a provider's appointment listing
type AppointmentFilter struct {
	Status    string // one of the appointment status values
	StartDate string // Format: YYYY-MM-DD
	EndDate   string // Format: YYYY-MM-DD
}
