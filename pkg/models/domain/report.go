package domain

import "time"

// Report represents one category's rendered analysis output
type Report struct {
	Title    string
	Category Category
	Period   TimePeriod
	Sections []ReportSection
}

// TimePeriod represents the reporting month covered by a report.
// Zero Start/End mean the month bound was not configured.
type TimePeriod struct {
	Start time.Time
	End   time.Time
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail represents one row within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
