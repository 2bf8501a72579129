package events

import "time"

const (
	SaleRecordedTopic     = "crm.sales.recorded.v1"
	SaleRecordedEventType = "sale_recorded"
)

type SaleRecordedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	SaleID         string    `json:"sale_id"`
	SaleNumber     string    `json:"sale_number"`
	OrganizationID string    `json:"organization_id"`
	LeadID         string    `json:"lead_id"`
	LeadName       string    `json:"lead_name"`
	ProductID      string    `json:"product_id"`
	ProductName    string    `json:"product_name"`
	UserID         string    `json:"user_id"`
	Quantity       int       `json:"quantity"`
	UnitPrice      float64   `json:"unit_price"`
	TotalPrice     float64   `json:"total_price"`
	OccurredAt     time.Time `json:"occurred_at"`
}
