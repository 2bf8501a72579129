package user

import (
	"time"

	"github.com/google/uuid"
)

// MemberRow is a user as seen from one organization.
type MemberRow struct {
	ID          uuid.UUID
	Name        string
	Email       string
	UserType    string
	IsVerified  bool
	IsActivated bool
	RoleName    string
	CreatedAt   time.Time
}

type DepartmentRow struct {
	UserID         uuid.UUID
	DepartmentID   uuid.UUID
	DepartmentName string
}
