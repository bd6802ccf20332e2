package converter

import (
	"healthcare-first-portal/internal/delivery/dto"
	"healthcare-first-portal/internal/domain/entity"
)

var dayNames = map[string]string{
	entity.DayMonday:    "Monday",
	entity.DayTuesday:   "Tuesday",
	entity.DayWednesday: "Wednesday",
	entity.DayThursday:  "Thursday",
	entity.DayFriday:    "Friday",
	entity.DaySaturday:  "Saturday",
	entity.DaySunday:    "Sunday",
}

// Timezones supported by the availability UI
var Timezones = map[string]string{
	"UTC":                 "UTC",
	"America/New_York":    "Eastern Time",
	"America/Chicago":     "Central Time",
	"America/Denver":      "Mountain Time",
	"America/Los_Angeles": "Pacific Time",
	"Europe/London":       "London",
	"Europe/Paris":        "Paris",
	"Asia/Tokyo":          "Tokyo",
	"Asia/Shanghai":       "Shanghai",
	"Australia/Sydney":    "Sydney",
}

// AvailabilitiesToWeeklyResponse builds the full 7-day structure, filling
// unset days with inactive placeholders.
func AvailabilitiesToWeeklyResponse(provider *entity.Provider, availabilities []entity.ProviderAvailability) *dto.WeeklyAvailabilityResponse {
	byDay := make(map[string]*entity.ProviderAvailability, len(availabilities))
	for i := range availabilities {
		byDay[availabilities[i].DayOfWeek] = &availabilities[i]
	}

	days := make([]dto.AvailabilityDayResponse, 0, len(entity.DaysOfWeek))
	for _, day := range entity.DaysOfWeek {
		entry := dto.AvailabilityDayResponse{
			DayOfWeek: day,
			DayName:   dayNames[day],
			Timezone:  "UTC",
		}
		if existing := byDay[day]; existing != nil {
			id := existing.ID
			start := existing.StartTime
			end := existing.EndTime
			entry.ID = &id
			entry.StartTime = &start
			entry.EndTime = &end
			entry.Timezone = existing.Timezone
			entry.IsActive = existing.IsActive
		}
		days = append(days, entry)
	}

	return &dto.WeeklyAvailabilityResponse{
		Provider:       ProviderToSummary(provider),
		Availabilities: days,
		Timezones:      Timezones,
	}
}

// AvailabilityToDateResponse resolves one weekly window onto a calendar date
func AvailabilityToDateResponse(provider *entity.Provider, date, dayOfWeek string, availability *entity.ProviderAvailability) *dto.DateAvailabilityResponse {
	response := &dto.DateAvailabilityResponse{
		Provider:  ProviderToSummary(provider),
		Date:      date,
		DayOfWeek: dayOfWeek,
		Timezone:  "UTC",
	}
	if availability != nil && availability.IsActive {
		start := availability.StartTime
		end := availability.EndTime
		response.IsAvailable = true
		response.StartTime = &start
		response.EndTime = &end
		response.Timezone = availability.Timezone
	} else if availability != nil {
		response.Timezone = availability.Timezone
	}
	return response
}
