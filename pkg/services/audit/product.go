// Package audit derives the per-product slice of the corrected metrics:
// how many verification actions touched a product and how many units the
// robot actually ordered for it.
package audit

import (
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/models/domain"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/services/roi"
)

// Product reports verification and ordering totals over a product-filtered
// record subset. An empty subset yields the zero audit.
func Product(records []domain.OrderRecord) domain.ProductAudit {
	var a domain.ProductAudit
	if len(records) == 0 {
		return a
	}

	a.Product = domain.Product{ID: records[0].ProductID, Display: records[0].Display}
	for _, r := range records {
		a.UnitsOrdered += r.OrderedQty
	}
	// Counting over a single pseudo-session reuses the iteration semantics.
	a.Verifications = roi.SessionIterations(domain.Session{Records: records})

	return a
}
