package adapters

import (
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/models/api"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/models/domain"
)

func MapDatasetDomainToApi(ds *domain.Dataset) api.Dataset {
	start, end := ds.Period()
	return api.Dataset{
		ID:           ds.ID,
		Rows:         ds.Stats.CleanRows,
		DroppedRows:  ds.Stats.DroppedRows,
		ZeroedFields: ds.Stats.ZeroedFields,
		Products:     len(ds.Products()),
		Period:       api.TimePeriod{Start: start, End: end},
	}
}

func MapROISummaryDomainToApi(s domain.ROISummary) api.ROISummary {
	return api.ROISummary{
		Sessions:   s.Sessions,
		Iterations: s.Iterations,
		Hours:      s.Hours,
		Value:      s.Value,
	}
}

func MapProductDomainToApi(p domain.Product) api.Product {
	return api.Product{ID: p.ID, Display: p.Display}
}

func MapProductAuditDomainToApi(a domain.ProductAudit) api.ProductAudit {
	return api.ProductAudit{
		Product:       MapProductDomainToApi(a.Product),
		Verifications: a.Verifications,
		UnitsOrdered:  a.UnitsOrdered,
	}
}

func MapOrderRecordDomainToApi(r domain.OrderRecord) api.OrderRecord {
	return api.OrderRecord{
		ProductID:    r.ProductID,
		Description:  r.Description,
		Display:      r.Display,
		TargetQty:    r.TargetQty,
		StockQty:     r.StockQty,
		ToOrderQty:   r.ToOrderQty,
		AvailableQty: r.AvailableQty,
		OrderedQty:   r.OrderedQty,
		Supplier:     r.Supplier,
		Timestamp:    r.Timestamp,
	}
}
