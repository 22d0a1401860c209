package domain

import "time"

// OrderRecord is a cleaned stock-check event. Quantity fields are
// non-negative integers and Description is the canonical per-product label.
type OrderRecord struct {
	ProductID    int
	Description  string
	TargetQty    int
	StockQty     int
	ToOrderQty   int
	AvailableQty int
	OrderedQty   int
	Supplier     string
	Timestamp    time.Time
	Date         time.Time // Timestamp at midnight, for calendar-range filters
	Display      string    // "<product id> - <description>"
}

// NormalizeStats counts the silent data-quality corrections applied while
// cleaning, so callers can surface them for diagnostics.
type NormalizeStats struct {
	InputRows    int
	CleanRows    int
	DroppedRows  int // rows excluded for an unparseable timestamp
	ZeroedFields int // numeric fields that degraded to 0
	OrderedFixes int // stale ordered quantities forced back to 0
}

type Product struct {
	ID      int
	Display string
}
