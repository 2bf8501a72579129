package auth

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name                string    `gorm:"type:varchar(150);not null"`
	Email               string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Password            string    `gorm:"type:varchar(255);not null"`
	UserType            string    `gorm:"type:varchar(20);not null;default:'USER'"`
	IsVerified          bool      `gorm:"not null;default:false"`
	IsActivated         bool      `gorm:"not null;default:false"`
	VerificationToken   *string   `gorm:"type:text"`
	ForgotPasswordToken *string   `gorm:"type:text"`
	RequestedRoles      []string  `gorm:"type:jsonb;serializer:json;not null;default:'[]'"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (User) TableName() string {
	return "users"
}

type UserOrganizationRole struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null"`
	RoleID         uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (UserOrganizationRole) TableName() string {
	return "user_organization_roles"
}

type UserDepartment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null"`
	DepartmentID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt    time.Time
}

func (UserDepartment) TableName() string {
	return "user_departments"
}

// MembershipRow is one organization the user belongs to, joined with its role.
type MembershipRow struct {
	OrganizationID   string
	OrganizationName string
	RoleName         string
}

type DepartmentRef struct {
	ID             string
	OrganizationID string
	Name           string
}

func tokenValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
