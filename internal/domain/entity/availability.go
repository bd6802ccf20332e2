package entity

import (
	"time"

	"healthcare-first-portal/internal/scheduling"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Days of the week as stored in provider_availabilities.day_of_week
const (
	DayMonday    = "monday"
	DayTuesday   = "tuesday"
	DayWednesday = "wednesday"
	DayThursday  = "thursday"
	DayFriday    = "friday"
	DaySaturday  = "saturday"
	DaySunday    = "sunday"
)

// DaysOfWeek lists weekdays in display order
var DaysOfWeek = []string{
	DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday, DaySunday,
}

// ProviderAvailability is a provider's recurring weekly bookable window for
// one weekday. At most one row exists per (provider, day_of_week); turning a
// day off deletes the row rather than flagging it.
type ProviderAvailability struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_provider_day" json:"provider_id"`
	DayOfWeek  string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_provider_day" json:"day_of_week"`
	StartTime  string    `gorm:"type:time;not null" json:"start_time"`
	EndTime    string    `gorm:"type:time;not null" json:"end_time"`
	Timezone   string    `gorm:"type:varchar(50);not null;default:'UTC'" json:"timezone"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Provider Provider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}

func (ProviderAvailability) TableName() string {
	return "provider_availabilities"
}

// AfterFind rewrites the TIME column values to the "HH:MM" form the
// scheduling logic and JSON responses expect; Postgres reads them back
// as "HH:MM:SS".
func (a *ProviderAvailability) AfterFind(*gorm.DB) error {
	a.StartTime = scheduling.NormalizeClock(a.StartTime)
	a.EndTime = scheduling.NormalizeClock(a.EndTime)
	return nil
}

// WeekdayKey resolves a calendar date to the stored day_of_week value
func WeekdayKey(date time.Time) string {
	switch date.Weekday() {
	case time.Monday:
		return DayMonday
	case time.Tuesday:
		return DayTuesday
	case time.Wednesday:
		return DayWednesday
	case time.Thursday:
		return DayThursday
	case time.Friday:
		return DayFriday
	case time.Saturday:
		return DaySaturday
	default:
		return DaySunday
	}
}
