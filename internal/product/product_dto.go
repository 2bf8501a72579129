package product

import "time"

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,max=150"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
	Description string  `json:"description"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=150"`
	UnitPrice   *float64 `json:"unit_price" binding:"omitempty,gte=0"`
	Description *string  `json:"description"`
}

type ProductResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	UnitPrice      float64   `json:"unit_price"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProductOption is the slim shape used by sale forms.
type ProductOption struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}
