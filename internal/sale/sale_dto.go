package sale

import "time"

type CreateSaleRequest struct {
	LeadID    string `json:"lead_id" binding:"required,uuid"`
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity"`
}

type SaleResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	SaleNumber     string    `json:"sale_number"`
	LeadID         string    `json:"lead_id"`
	LeadName       string    `json:"lead_name,omitempty"`
	ProductID      string    `json:"product_id"`
	ProductName    string    `json:"product_name,omitempty"`
	UserID         string    `json:"user_id"`
	Quantity       int       `json:"quantity"`
	UnitPrice      float64   `json:"unit_price"`
	TotalPrice     float64   `json:"total_price"`
	CreatedAt      time.Time `json:"created_at"`
}
