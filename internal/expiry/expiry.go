// Package expiry classifies food items by how many days they have left.
package expiry

import (
	"fmt"

	"smart_fridge/internal/models"
)

// Severity is the urgency tier of an item.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityNormal   Severity = "normal"
)

const (
	CriticalMaxDays = 2 // days <= 2 is critical
	WarningMaxDays  = 5 // 3..5 is warning

	// ExpiringSoonMaxDays is the inclusive threshold of the dashboard counter.
	ExpiringSoonMaxDays = 2

	// FallbackDays is shown when an item has no expiry date at all.
	FallbackDays = 7
)

// DaysUntil returns the whole-day difference from ref to expiryDate.
// Past dates yield negative values.
func DaysUntil(expiryDate, ref models.Date) int {
	return expiryDate.DaysSince(ref)
}

// DaysRemaining is DaysUntil with the display fallback for a missing date.
func DaysRemaining(expiryDate, ref models.Date) int {
	if expiryDate.IsZero() {
		return FallbackDays
	}
	return DaysUntil(expiryDate, ref)
}

// Classify maps a remaining-days count to its severity tier.
func Classify(days int) Severity {
	switch {
	case days <= CriticalMaxDays:
		return SeverityCritical
	case days <= WarningMaxDays:
		return SeverityWarning
	default:
		return SeverityNormal
	}
}

// ExpiringSoon reports whether days falls inside the dashboard's window.
func ExpiringSoon(days int) bool {
	return days <= ExpiringSoonMaxDays
}

// StatusLabel is the short text shown next to an item.
func StatusLabel(days int) string {
	if days <= 0 {
		return "Expired"
	}
	return fmt.Sprintf("%d Days left", days)
}
