package dto

// Request DTOs

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled arrived in_progress completed canceled no_show rescheduled"`
	Notes  string `json:"notes" validate:"omitempty,max=1000"`
}

// Response DTOs

type ProviderAppointmentResponse struct {
	Appointment AppointmentResponse `json:"appointment"`
	Patient     *PatientResponse    `json:"patient,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []ProviderAppointmentResponse `json:"appointments"`
	Total        int                           `json:"total"`
	Statuses     []string                      `json:"statuses,omitempty"`
}

type AppointmentStatsResponse struct {
	Today     int64            `json:"today"`
	Scheduled int64            `json:"scheduled"`
	Completed int64            `json:"completed"`
	ByStatus  map[string]int64 `json:"by_status"`
}
