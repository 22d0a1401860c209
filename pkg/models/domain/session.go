package domain

import "time"

// Session is a maximal run of records ordered by timestamp where no two
// adjacent records are separated by more than the configured inactivity gap.
type Session struct {
	ID      int
	Start   time.Time
	End     time.Time
	Records []OrderRecord
}

func (s Session) RawDurationSeconds() float64 {
	return s.End.Sub(s.Start).Seconds()
}

// ROISummary aggregates corrected session durations into labor-hours and a
// monetary value. Purely derived; an empty session set yields the zero value.
type ROISummary struct {
	Sessions   int
	Iterations int
	Hours      float64
	Value      float64
}

// ProductAudit is the per-product slice of the same corrected metrics.
type ProductAudit struct {
	Product       Product
	Verifications int
	UnitsOrdered  int
}
