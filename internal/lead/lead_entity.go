package lead

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index:idx_leads_org_status"`
	CreatedBy      uuid.UUID `gorm:"type:uuid;not null"`
	Name           string    `gorm:"size:150;not null"`
	Email          string    `gorm:"size:255;not null;uniqueIndex:uq_leads_email"`
	Phone          string    `gorm:"size:50;not null;uniqueIndex:uq_leads_phone"`
	Company        string    `gorm:"size:150;not null;default:''"`
	Source         string    `gorm:"size:100;not null;default:''"`
	Notes          string    `gorm:"type:text;not null;default:''"`
	LeadStatus     string    `gorm:"size:20;not null;default:'LEAD';index:idx_leads_org_status"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Lead) TableName() string {
	return "leads"
}
