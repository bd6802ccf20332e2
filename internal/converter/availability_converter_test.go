package converter

import (
	"testing"

	"healthcare-first-portal/internal/domain/entity"

	"github.com/google/uuid"
)

func TestAvailabilitiesToWeeklyResponse(t *testing.T) {
	provider := &entity.Provider{ID: uuid.New(), FirstName: "Ada", LastName: "Obi"}
	availabilities := []entity.ProviderAvailability{
		{ID: 1, DayOfWeek: entity.DayMonday, StartTime: "09:00", EndTime: "17:00", Timezone: "America/New_York", IsActive: true},
		{ID: 2, DayOfWeek: entity.DayFriday, StartTime: "10:00", EndTime: "14:00", Timezone: "UTC", IsActive: true},
	}

	result := AvailabilitiesToWeeklyResponse(provider, availabilities)

	if len(result.Availabilities) != 7 {
		t.Fatalf("expected all 7 days, got %d", len(result.Availabilities))
	}

	active := 0
	for _, day := range result.Availabilities {
		if day.IsActive {
			active++
			if day.ID == nil || day.StartTime == nil || day.EndTime == nil {
				t.Errorf("active day %s missing id or times", day.DayOfWeek)
			}
		} else {
			if day.ID != nil {
				t.Errorf("inactive day %s should be a placeholder", day.DayOfWeek)
			}
		}
	}
	if active != 2 {
		t.Errorf("expected 2 active days, got %d", active)
	}

	monday := result.Availabilities[0]
	if monday.DayOfWeek != entity.DayMonday || monday.DayName != "Monday" {
		t.Errorf("first entry should be Monday, got %s", monday.DayOfWeek)
	}
	if monday.Timezone != "America/New_York" {
		t.Errorf("monday timezone = %s", monday.Timezone)
	}
}

func TestAvailabilityToDateResponse(t *testing.T) {
	provider := &entity.Provider{ID: uuid.New(), FirstName: "Ada", LastName: "Obi"}

	t.Run("active day", func(t *testing.T) {
		availability := &entity.ProviderAvailability{
			DayOfWeek: entity.DayTuesday,
			StartTime: "09:00",
			EndTime:   "12:00",
			Timezone:  "Europe/London",
			IsActive:  true,
		}
		result := AvailabilityToDateResponse(provider, "2026-09-01", entity.DayTuesday, availability)
		if !result.IsAvailable {
			t.Error("expected available")
		}
		if result.StartTime == nil || *result.StartTime != "09:00" {
			t.Error("start time not carried over")
		}
		if result.Timezone != "Europe/London" {
			t.Errorf("timezone = %s", result.Timezone)
		}
	})

	t.Run("no availability row", func(t *testing.T) {
		result := AvailabilityToDateResponse(provider, "2026-09-06", entity.DaySunday, nil)
		if result.IsAvailable {
			t.Error("expected unavailable")
		}
		if result.StartTime != nil || result.EndTime != nil {
			t.Error("times should be nil for an off day")
		}
	})
}
