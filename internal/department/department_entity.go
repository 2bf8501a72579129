package department

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_departments_org_name"`
	Name           string    `gorm:"size:150;not null;uniqueIndex:uq_departments_org_name"`
	Description    string    `gorm:"type:text;not null;default:''"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Department) TableName() string {
	return "departments"
}

// MemberRow is a user attached to a department, with their role in the organization.
type MemberRow struct {
	UserID   uuid.UUID
	Name     string
	Email    string
	UserType string
	RoleName string
	JoinedAt time.Time
}
