package domain

import "time"

// Report represents a rendered ROI analysis
type Report struct {
	Title      string
	Period     TimePeriod
	Sections   []ReportSection
	TotalValue float64
	Currency   string
}

// TimePeriod represents the date range the report covers
type TimePeriod struct {
	Start time.Time
	End   time.Time
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Details []ReportDetail
}

// ReportDetail represents one metric line within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
