package dto

// Request DTOs

// AvailabilityDayRequest is one entry of the weekly bulk update. Inactive
// days need no times; active days must carry both.
type AvailabilityDayRequest struct {
	DayOfWeek string `json:"day_of_week" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Timezone  string `json:"timezone" validate:"omitempty,max=50"`
	IsActive  bool   `json:"is_active"`
}

type UpdateAvailabilityRequest struct {
	Availabilities []AvailabilityDayRequest `json:"availabilities" validate:"required,min=1,max=7,dive"`
}

// Response DTOs

type AvailabilityDayResponse struct {
	ID        *int    `json:"id"`
	DayOfWeek string  `json:"day_of_week"`
	DayName   string  `json:"day_name"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Timezone  string  `json:"timezone"`
	IsActive  bool    `json:"is_active"`
}

type WeeklyAvailabilityResponse struct {
	Provider       ProviderSummaryResponse   `json:"provider"`
	Availabilities []AvailabilityDayResponse `json:"availabilities"`
	Timezones      map[string]string         `json:"timezones"`
}

// DateAvailabilityResponse resolves a provider's weekly window onto one date
type DateAvailabilityResponse struct {
	Provider    ProviderSummaryResponse `json:"provider"`
	Date        string                  `json:"date"`
	DayOfWeek   string                  `json:"day_of_week"`
	IsAvailable bool                    `json:"is_available"`
	StartTime   *string                 `json:"start_time"`
	EndTime     *string                 `json:"end_time"`
	Timezone    string                  `json:"timezone"`
}
