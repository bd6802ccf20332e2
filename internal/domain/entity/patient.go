package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Patient represents a patient account. Patients are created by a provider,
// who becomes their assigned provider.
type Patient struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName           string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName            string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Email               string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password            string     `gorm:"type:text;not null" json:"-"`
	Phone               string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	DateOfBirth         *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender              string     `gorm:"type:varchar(20)" json:"gender,omitempty"`
	Address             string     `gorm:"type:text" json:"address,omitempty"`
	Status              string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	AssignedProviderID  *uuid.UUID `gorm:"type:uuid;index" json:"assigned_provider_id,omitempty"`
	CreatedByProviderID *uuid.UUID `gorm:"type:uuid" json:"created_by_provider_id,omitempty"`
	CreatedAt           time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	AssignedProvider *Provider     `gorm:"foreignKey:AssignedProviderID" json:"assigned_provider,omitempty"`
	Appointments     []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// FullName returns the patient's display name
func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
