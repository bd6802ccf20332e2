package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProviderStatus represents the approval state of a provider account
type ProviderStatus string

const (
	ProviderStatusPending   ProviderStatus = "pending"
	ProviderStatusApproved  ProviderStatus = "approved"
	ProviderStatusRejected  ProviderStatus = "rejected"
	ProviderStatusSuspended ProviderStatus = "suspended"
)

// Provider represents a healthcare provider account.
// Only approved providers are exposed to patients for booking.
type Provider struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName      string         `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName       string         `gorm:"type:varchar(100);not null" json:"last_name"`
	Email          string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string         `gorm:"type:text;not null" json:"-"`
	Phone          string         `gorm:"type:varchar(20);uniqueIndex" json:"phone,omitempty"`
	LicenseNumber  string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Specialization string         `gorm:"type:varchar(100);not null;index" json:"specialization"`
	ClinicName     string         `gorm:"type:varchar(255)" json:"clinic_name,omitempty"`
	City           string         `gorm:"type:varchar(100)" json:"city,omitempty"`
	State          string         `gorm:"type:varchar(100)" json:"state,omitempty"`
	Status         ProviderStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ApprovedAt     *time.Time     `json:"approved_at,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Availabilities []ProviderAvailability `gorm:"foreignKey:ProviderID" json:"availabilities,omitempty"`
	BlockedDays    []BlockedDay           `gorm:"foreignKey:ProviderID" json:"blocked_days,omitempty"`
	Slots          []AppointmentSlot      `gorm:"foreignKey:ProviderID" json:"slots,omitempty"`
}

func (Provider) TableName() string {
	return "providers"
}

// FullName returns the provider's display name
func (p *Provider) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Location returns "City, State" for directory listings
func (p *Provider) Location() string {
	return strings.Trim(strings.TrimSpace(p.City+", "+p.State), ",")
}

// IsApproved checks whether the provider is bookable by patients
func (p *Provider) IsApproved() bool {
	return p.Status == ProviderStatusApproved
}
