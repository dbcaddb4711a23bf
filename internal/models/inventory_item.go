package models

// InventoryItem is one tracked food entry. Days remaining is not stored; it
// is derived from ExpiryDate whenever the item is read.
type InventoryItem struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Quantity   float64  `json:"quantity"`
	Unit       string   `json:"unit"`
	Category   Category `json:"category"`
	ExpiryDate Date     `json:"expiry_date"`
}

// DetectedItem is an untrusted record suggested by the vision model. Pointer
// fields distinguish "absent" from a zero value.
type DetectedItem struct {
	Name                string   `json:"name,omitempty"`
	Quantity            *float64 `json:"quantity,omitempty"`
	Unit                string   `json:"unit,omitempty"`
	Category            string   `json:"category,omitempty"`
	EstimatedExpiryDays *int     `json:"estimatedExpiryDays,omitempty"`
}
