package contact

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index:idx_contacts_org"`
	CreatedBy      uuid.UUID `gorm:"type:uuid;not null"`
	Name           string    `gorm:"size:150;not null"`
	Email          string    `gorm:"size:255;not null;uniqueIndex:uq_contacts_email"`
	Phone          string    `gorm:"size:50;not null;uniqueIndex:uq_contacts_phone"`
	Company        string    `gorm:"size:150;not null;default:''"`
	Notes          string    `gorm:"type:text;not null;default:''"`
	LeadStatus     string    `gorm:"size:20;not null;default:'LEAD'"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Contact) TableName() string {
	return "contacts"
}
