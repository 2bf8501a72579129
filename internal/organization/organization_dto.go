package organization

import "time"

type CreateOrganizationRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=150"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" binding:"omitempty,max=50"`
	Address string `json:"address" binding:"omitempty,max=255"`
	City    string `json:"city" binding:"omitempty,max=100"`
	Country string `json:"country" binding:"omitempty,max=100"`
	Website string `json:"website" binding:"omitempty,url"`
}

// UpdateOrganizationRequest only touches the fields that are present.
type UpdateOrganizationRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=150"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Address *string `json:"address" binding:"omitempty,max=255"`
	City    *string `json:"city" binding:"omitempty,max=100"`
	Country *string `json:"country" binding:"omitempty,max=100"`
	Website *string `json:"website" binding:"omitempty,url"`
}

type OrganizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Website   string    `json:"website"`
	OwnerID   string    `json:"owner_id"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
