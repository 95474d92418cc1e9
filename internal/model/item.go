package model

import "time"

// Item represents a tracked inventory item (quantity-based, not individual tracking).
type Item struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand,omitempty"`
	SerialNumber string    `json:"serial_number,omitempty"`
	Category     string    `json:"category"`
	Quantity     int       `json:"quantity"`
	Unit         string    `json:"unit,omitempty"`
	MinThreshold int       `json:"min_threshold"`
	RecordDate   string    `json:"record_date,omitempty"`
	Price        float64   `json:"price"`
	LastUpdated  time.Time `json:"last_updated"`
	ImageURL     string    `json:"image_url,omitempty"`
	Status       string    `json:"status"`
	CreatedBy    string    `json:"created_by"`
}

// Item approval statuses. Status only ever moves PENDING -> APPROVED.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
)

// Seeded categories. The set is open: items may carry other values.
const (
	CategoryAsset     = "Asset"
	CategoryInventory = "Inventory"
	CategorySupplies  = "Supplies"
)

// LowStock reports whether the item's quantity has fallen to or below its
// low-stock threshold.
func (i *Item) LowStock() bool {
	return i.Quantity <= i.MinThreshold
}
