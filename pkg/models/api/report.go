package api

import "time"

type TimePeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type Dataset struct {
	ID           string     `json:"id"`
	Rows         int        `json:"rows"`
	DroppedRows  int        `json:"dropped_rows"`
	ZeroedFields int        `json:"zeroed_fields"`
	Products     int        `json:"products"`
	Period       TimePeriod `json:"period"`
}

type ROISummary struct {
	Sessions   int     `json:"sessions"`
	Iterations int     `json:"iterations"`
	Hours      float64 `json:"hours"`
	Value      float64 `json:"value"`
}

type Product struct {
	ID      int    `json:"id"`
	Display string `json:"display"`
}

type ProductAudit struct {
	Product       Product `json:"product"`
	Verifications int     `json:"verifications"`
	UnitsOrdered  int     `json:"units_ordered"`
}

type OrderRecord struct {
	ProductID    int       `json:"product_id"`
	Description  string    `json:"description"`
	Display      string    `json:"display"`
	TargetQty    int       `json:"target_qty"`
	StockQty     int       `json:"stock_qty"`
	ToOrderQty   int       `json:"to_order_qty"`
	AvailableQty int       `json:"available_qty"`
	OrderedQty   int       `json:"ordered_qty"`
	Supplier     string    `json:"supplier,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
