package entity

import (
	"time"

	"healthcare-first-portal/internal/scheduling"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlockedDay is a provider-declared exception removing bookability on a
// specific date, either for the whole day or for a partial window.
// Unique per (provider, date).
type BlockedDay struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_provider_blocked_date" json:"provider_id"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_provider_blocked_date" json:"date"`
	StartTime  *string   `gorm:"type:time" json:"start_time,omitempty"`
	EndTime    *string   `gorm:"type:time" json:"end_time,omitempty"`
	Reason     string    `gorm:"type:varchar(255)" json:"reason,omitempty"`
	IsFullDay  bool      `gorm:"not null;default:true" json:"is_full_day"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Provider Provider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}

func (BlockedDay) TableName() string {
	return "blocked_days"
}

// AfterFind rewrites the TIME column values to the "HH:MM" form the
// scheduling logic and JSON responses expect; Postgres reads them back
// as "HH:MM:SS".
func (b *BlockedDay) AfterFind(*gorm.DB) error {
	if b.StartTime != nil {
		*b.StartTime = scheduling.NormalizeClock(*b.StartTime)
	}
	if b.EndTime != nil {
		*b.EndTime = scheduling.NormalizeClock(*b.EndTime)
	}
	return nil
}

// Blocks reports whether the given time-of-day window is unavailable because
// of this block. Full-day blocks cover every window; partial blocks use the
// half-open overlap rule.
func (b *BlockedDay) Blocks(startTime, endTime string) bool {
	if b.IsFullDay || b.StartTime == nil || b.EndTime == nil {
		return true
	}
	return scheduling.Overlaps(*b.StartTime, *b.EndTime, startTime, endTime)
}
