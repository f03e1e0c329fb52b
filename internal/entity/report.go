package entity

import "time"

// Report is a saved, named query definition (analytics_reports table).
// Metrics and dimensions are non-empty ordered lists; the referenced source
// belongs to the same owner.
type Report struct {
	ID          string     `db:"id" json:"id"`
	UserID      string     `db:"user_id" json:"userId"`
	SourceID    string     `db:"source_id" json:"sourceId"`
	Name        string     `db:"name" json:"name"`
	Description *string    `db:"description" json:"description,omitempty"`
	StartDate   Date       `db:"start_date" json:"startDate"`
	EndDate     Date       `db:"end_date" json:"endDate"`
	Metrics     StringList `db:"metrics" json:"metrics"`
	Dimensions  StringList `db:"dimensions" json:"dimensions"`
	Filters     Filters    `db:"filters" json:"filters,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}

// ReportWithSource is a report joined with the name of its source, used by
// the report list view.
type ReportWithSource struct {
	Report
	SourceName string `db:"source_name" json:"sourceName"`
}

// ReportInsert is the payload for creating a report.
type ReportInsert struct {
	SourceID    string     `json:"sourceId"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	StartDate   Date       `json:"startDate"`
	EndDate     Date       `json:"endDate"`
	Metrics     StringList `json:"metrics"`
	Dimensions  StringList `json:"dimensions"`
	Filters     Filters    `json:"filters,omitempty"`
}
