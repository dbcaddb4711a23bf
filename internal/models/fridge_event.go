package models

import "time"

// Event types recorded in the activity log.
const (
	EventItemAdded       = "ITEM_ADDED"
	EventItemRemoved     = "ITEM_REMOVED"
	EventScanMerged      = "SCAN_MERGED"
	EventScanFailed      = "SCAN_FAILED"
	EventRecipeGenerated = "RECIPE_GENERATED"
	EventRecipeFallback  = "RECIPE_FALLBACK"
)

// FridgeEvent is a single activity log entry.
type FridgeEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // ITEM_ADDED | ITEM_REMOVED | SCAN_MERGED | SCAN_FAILED | RECIPE_GENERATED | RECIPE_FALLBACK
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
