package analysis

import (
	"time"

	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/models/domain"
)

// FilterRange keeps records whose calendar date falls inside [from, to],
// inclusive at both ends. A nil bound leaves that side open.
func FilterRange(records []domain.OrderRecord, from, to *time.Time) []domain.OrderRecord {
	if from == nil && to == nil {
		return records
	}

	filtered := make([]domain.OrderRecord, 0, len(records))
	for _, r := range records {
		if from != nil && r.Date.Before(dayOf(*from)) {
			continue
		}
		if to != nil && r.Date.After(dayOf(*to)) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// FilterProduct keeps records of a single product.
func FilterProduct(records []domain.OrderRecord, productID int) []domain.OrderRecord {
	filtered := make([]domain.OrderRecord, 0, len(records))
	for _, r := range records {
		if r.ProductID == productID {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
