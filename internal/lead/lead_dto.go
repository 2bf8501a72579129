package lead

import "time"

type CreateLeadRequest struct {
	Name       string `json:"name" binding:"required,max=150"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required,max=50"`
	Company    string `json:"company" binding:"omitempty,max=150"`
	Source     string `json:"source" binding:"omitempty,max=100"`
	Notes      string `json:"notes"`
	LeadStatus string `json:"lead_status" binding:"omitempty,lead_status"`
}

type UpdateLeadRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=150"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Company *string `json:"company" binding:"omitempty,max=150"`
	Source  *string `json:"source" binding:"omitempty,max=100"`
	Notes   *string `json:"notes"`
}

// UpdateLeadStatusRequest is validated in the service so CLOSED gets its own error.
type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type LeadResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	CreatedBy      string    `json:"created_by"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Company        string    `json:"company"`
	Source         string    `json:"source"`
	Notes          string    `json:"notes"`
	LeadStatus     string    `json:"lead_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
