package product

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_products_org_name"`
	Name           string    `gorm:"size:150;not null;uniqueIndex:uq_products_org_name"`
	UnitPrice      float64   `gorm:"type:numeric(12,2);not null"`
	Description    string    `gorm:"type:text;not null;default:''"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
