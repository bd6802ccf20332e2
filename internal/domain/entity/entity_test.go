package entity

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestBlockedDayBlocks(t *testing.T) {
	tests := []struct {
		name       string
		blocked    BlockedDay
		start, end string
		want       bool
	}{
		{
			name:    "full day blocks everything",
			blocked: BlockedDay{IsFullDay: true},
			start:   "09:00", end: "09:30",
			want: true,
		},
		{
			name:    "partial without times treated as full day",
			blocked: BlockedDay{IsFullDay: false},
			start:   "09:00", end: "09:30",
			want: true,
		},
		{
			name:    "partial overlapping window",
			blocked: BlockedDay{IsFullDay: false, StartTime: strPtr("12:00"), EndTime: strPtr("13:00")},
			start:   "12:30", end: "13:30",
			want: true,
		},
		{
			name:    "partial touching window",
			blocked: BlockedDay{IsFullDay: false, StartTime: strPtr("12:00"), EndTime: strPtr("13:00")},
			start:   "13:00", end: "13:30",
			want: false,
		},
		{
			name:    "partial disjoint window",
			blocked: BlockedDay{IsFullDay: false, StartTime: strPtr("12:00"), EndTime: strPtr("13:00")},
			start:   "09:00", end: "10:00",
			want: false,
		},
		{
			name:    "partial with database time format",
			blocked: BlockedDay{IsFullDay: false, StartTime: strPtr("12:00:00"), EndTime: strPtr("13:00:00")},
			start:   "13:00", end: "13:30",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.blocked.Blocks(tt.start, tt.end); got != tt.want {
				t.Errorf("Blocks(%s, %s) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestAfterFindNormalizesTimes(t *testing.T) {
	availability := ProviderAvailability{StartTime: "09:00:00", EndTime: "17:00:00.000000"}
	if err := availability.AfterFind(nil); err != nil {
		t.Fatalf("AfterFind: %v", err)
	}
	if availability.StartTime != "09:00" || availability.EndTime != "17:00" {
		t.Errorf("availability times = %s-%s, want 09:00-17:00", availability.StartTime, availability.EndTime)
	}

	slot := AppointmentSlot{StartTime: "09:30:00", EndTime: "10:00:00"}
	if err := slot.AfterFind(nil); err != nil {
		t.Fatalf("AfterFind: %v", err)
	}
	if slot.StartTime != "09:30" || slot.EndTime != "10:00" {
		t.Errorf("slot times = %s-%s, want 09:30-10:00", slot.StartTime, slot.EndTime)
	}

	blocked := BlockedDay{StartTime: strPtr("12:00:00"), EndTime: strPtr("13:00:00")}
	if err := blocked.AfterFind(nil); err != nil {
		t.Fatalf("AfterFind: %v", err)
	}
	if *blocked.StartTime != "12:00" || *blocked.EndTime != "13:00" {
		t.Errorf("blocked times = %s-%s, want 12:00-13:00", *blocked.StartTime, *blocked.EndTime)
	}

	fullDay := BlockedDay{IsFullDay: true}
	if err := fullDay.AfterFind(nil); err != nil {
		t.Fatalf("AfterFind: %v", err)
	}
}

func TestWeekdayKey(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), DayMonday},
		{time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), DayTuesday},
		{time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC), DaySaturday},
		{time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC), DaySunday},
	}

	for _, tt := range tests {
		if got := WeekdayKey(tt.date); got != tt.want {
			t.Errorf("WeekdayKey(%s) = %s, want %s", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestIsValidAppointmentStatus(t *testing.T) {
	for _, status := range AppointmentStatuses() {
		if !IsValidAppointmentStatus(status) {
			t.Errorf("%s should be valid", status)
		}
	}
	if IsValidAppointmentStatus("pending") {
		t.Error("pending is not an appointment status")
	}
}

func TestProviderHelpers(t *testing.T) {
	provider := Provider{
		FirstName: "Ada",
		LastName:  "Obi",
		City:      "Lagos",
		State:     "LA",
		Status:    ProviderStatusApproved,
	}

	if got := provider.FullName(); got != "Ada Obi" {
		t.Errorf("FullName() = %q", got)
	}
	if got := provider.Location(); got != "Lagos, LA" {
		t.Errorf("Location() = %q", got)
	}
	if !provider.IsApproved() {
		t.Error("approved provider reported as not approved")
	}

	pending := Provider{Status: ProviderStatusPending}
	if pending.IsApproved() {
		t.Error("pending provider reported as approved")
	}
}
