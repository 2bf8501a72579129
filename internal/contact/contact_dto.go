package contact

import "time"

type CreateContactRequest struct {
	Name       string `json:"name" binding:"required,max=150"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required,max=50"`
	Company    string `json:"company" binding:"omitempty,max=150"`
	Notes      string `json:"notes"`
	LeadStatus string `json:"lead_status" binding:"omitempty,lead_status"`
}

type UpdateContactRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=150"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone" binding:"omitempty,max=50"`
	Company    *string `json:"company" binding:"omitempty,max=150"`
	Notes      *string `json:"notes"`
	LeadStatus *string `json:"lead_status" binding:"omitempty,lead_status"`
}

type ContactResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	CreatedBy      string    `json:"created_by"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Company        string    `json:"company"`
	Notes          string    `json:"notes"`
	LeadStatus     string    `json:"lead_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
