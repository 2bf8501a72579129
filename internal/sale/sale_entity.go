package sale

import (
	"time"

	"github.com/google/uuid"
)

type Sale struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uq_sales_org_number"`
	SaleNumber     string       `gorm:"size:30;not null;uniqueIndex:uq_sales_org_number"`
	LeadID         uuid.UUID    `gorm:"type:uuid;not null"`
	Lead           *SaleLead    `gorm:"foreignKey:LeadID;references:ID"`
	ProductID      uuid.UUID    `gorm:"type:uuid;not null"`
	Product        *SaleProduct `gorm:"foreignKey:ProductID;references:ID"`
	UserID         uuid.UUID    `gorm:"type:uuid;not null"`
	Quantity       int          `gorm:"not null"`
	UnitPrice      float64      `gorm:"type:numeric(12,2);not null"`
	TotalPrice     float64      `gorm:"type:numeric(14,2);not null"`
	CreatedAt      time.Time    `gorm:"autoCreateTime"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime"`
}

func (Sale) TableName() string {
	return "sales"
}

// SaleLead is the slice of a lead a sale reads and closes.
type SaleLead struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid"`
	Name           string
	LeadStatus     string
}

func (SaleLead) TableName() string {
	return "leads"
}

// SaleProduct carries the price that gets snapshotted onto a sale.
type SaleProduct struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid"`
	Name           string
	UnitPrice      float64 `gorm:"type:numeric(12,2)"`
}

func (SaleProduct) TableName() string {
	return "products"
}

type SaleFilter struct {
	LeadID    string
	ProductID string
}
