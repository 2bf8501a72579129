package organization

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"size:150;not null;uniqueIndex:uq_organizations_name"`
	Email     string    `gorm:"size:255;not null;default:''"`
	Phone     string    `gorm:"size:50;not null;default:''"`
	Address   string    `gorm:"size:255;not null;default:''"`
	City      string    `gorm:"size:100;not null;default:''"`
	Country   string    `gorm:"size:100;not null;default:''"`
	Website   string    `gorm:"size:255;not null;default:''"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Organization) TableName() string {
	return "organizations"
}

// Membership is the user_organization_roles edge as seen from this package.
type Membership struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null"`
	RoleID         uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Membership) TableName() string {
	return "user_organization_roles"
}

// OrganizationWithRole is one row of the caller's organization list.
type OrganizationWithRole struct {
	Organization
	RoleName string
}
