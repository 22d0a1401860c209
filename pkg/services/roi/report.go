package roi

import (
	"time"

	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/models/domain"
)

// BuildReport shapes a summary into the renderable report the terminal
// reporter consumes. The KPI section mirrors the metrics the operators track:
// monitored products, execution cycles, retained hours, and saved value.
func BuildReport(ds *domain.Dataset, records []domain.OrderRecord, summary domain.ROISummary, currency string) *domain.Report {
	start, end := periodOf(records)

	products := make(map[int]struct{})
	for _, r := range records {
		products[r.ProductID] = struct{}{}
	}

	report := &domain.Report{
		Title:      "PharmaInstantOrders ROI Report",
		Period:     domain.TimePeriod{Start: start, End: end},
		TotalValue: summary.Value,
		Currency:   currency,
	}

	report.Sections = append(report.Sections, domain.ReportSection{
		Title: "Availability Report",
		Details: []domain.ReportDetail{
			{
				Name:        "Monitored Products",
				Value:       len(products),
				Unit:        "products",
				Description: "Distinct references watched by the robot",
			},
			{
				Name:        "Execution Cycles",
				Value:       summary.Sessions,
				Unit:        "sessions",
				Description: "Full script runs within the period",
			},
			{
				Name:        "Stock Verifications",
				Value:       summary.Iterations,
				Unit:        "checks",
				Description: "Distinct verification actions performed",
			},
			{
				Name:        "Retained Hours",
				Value:       summary.Hours,
				Unit:        "hours",
				Description: "Human-equivalent work hours displaced",
			},
			{
				Name:        "Saved Value",
				Value:       summary.Value,
				Unit:        currency,
				Description: "Retained hours priced at the hourly labor cost",
			},
		},
	})

	if ds != nil {
		report.Sections = append(report.Sections, domain.ReportSection{
			Title: "Data Quality",
			Details: []domain.ReportDetail{
				{
					Name:        "Source Rows",
					Value:       ds.Stats.InputRows,
					Unit:        "rows",
					Description: "Rows read from the order history",
				},
				{
					Name:        "Dropped Rows",
					Value:       ds.Stats.DroppedRows,
					Unit:        "rows",
					Description: "Rows excluded for an unparseable timestamp",
				},
				{
					Name:        "Zeroed Fields",
					Value:       ds.Stats.ZeroedFields,
					Unit:        "fields",
					Description: "Numeric fields that degraded to 0",
				},
				{
					Name:        "Ordered Fixes",
					Value:       ds.Stats.OrderedFixes,
					Unit:        "rows",
					Description: "Stale ordered quantities forced back to 0",
				},
			},
		})
	}

	return report
}

func periodOf(records []domain.OrderRecord) (start, end time.Time) {
	for i, r := range records {
		if i == 0 || r.Timestamp.Before(start) {
			start = r.Timestamp
		}
		if i == 0 || r.Timestamp.After(end) {
			end = r.Timestamp
		}
	}
	return start, end
}
