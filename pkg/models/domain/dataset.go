package domain

import (
	"sort"
	"time"
)

// Dataset is one cleaned upload. The record set is immutable for the
// lifetime of the analysis run; filters and session metrics are always
// recomputed from it.
type Dataset struct {
	ID      string
	Hash    string // hex SHA-256 of the raw input bytes
	Records []OrderRecord
	Stats   NormalizeStats
}

// Period returns the calendar range covered by the dataset.
func (d *Dataset) Period() (start, end time.Time) {
	for i, r := range d.Records {
		if i == 0 || r.Date.Before(start) {
			start = r.Date
		}
		if i == 0 || r.Date.After(end) {
			end = r.Date
		}
	}
	return start, end
}

// Products lists the distinct monitored products, ordered by display label.
func (d *Dataset) Products() []Product {
	seen := make(map[int]Product)
	for _, r := range d.Records {
		if _, ok := seen[r.ProductID]; !ok {
			seen[r.ProductID] = Product{ID: r.ProductID, Display: r.Display}
		}
	}
	products := make([]Product, 0, len(seen))
	for _, p := range seen {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].Display < products[j].Display
	})
	return products
}
