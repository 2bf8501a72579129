package events

import "time"

const (
	UserInvitedTopic     = "crm.users.invited.v1"
	UserInvitedEventType = "user_invited"
)

// UserInvitedEvent never carries the generated password.
type UserInvitedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	UserID         string    `json:"user_id"`
	InvitedBy      string    `json:"invited_by"`
	OrganizationID string    `json:"organization_id"`
	DepartmentID   string    `json:"department_id"`
	UserType       string    `json:"user_type"`
	Role           string    `json:"role"`
	OccurredAt     time.Time `json:"occurred_at"`
}
