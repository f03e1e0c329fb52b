package entity

// Metric identifiers recognized by the metrics engine.
const (
	MetricActiveUsers        = "activeUsers"
	MetricNewUsers           = "newUsers"
	MetricSessions           = "sessions"
	MetricPageviews          = "pageviews"
	MetricBounceRate         = "bounceRate"
	MetricAvgSessionDuration = "avgSessionDuration"
	MetricPagesPerSession    = "pagesPerSession"
	MetricConversionRate     = "conversionRate"
)

// Dimension identifiers with dedicated handling in the metrics engine.
const (
	DimensionDate    = "date"
	DimensionWeek    = "week"
	DimensionMonth   = "month"
	DimensionSource  = "source"
	DimensionChannel = "channel"
	DimensionCountry = "country"
	DimensionDevice  = "device"
	DimensionBrowser = "browser"
)

// MetricType tags the numeric type of a metric column in the response.
type MetricType string

const (
	MetricTypeInteger MetricType = "INTEGER"
	MetricTypeFloat   MetricType = "FLOAT"
	MetricTypeTime    MetricType = "TIME"
)

// MetricTypeOf returns the header type tag for a metric name.
// bounceRate and conversionRate are FLOAT, avgSessionDuration is TIME,
// everything else is INTEGER.
func MetricTypeOf(metric string) MetricType {
	switch metric {
	case MetricBounceRate, MetricConversionRate:
		return MetricTypeFloat
	case MetricAvgSessionDuration:
		return MetricTypeTime
	default:
		return MetricTypeInteger
	}
}

// QueryParameters is the resolved input to an analytics client: either the
// caller's ad hoc parameters or the stored parameters of a referenced report.
type QueryParameters struct {
	SourceID   string
	StartDate  Date
	EndDate    Date
	Metrics    []string
	Dimensions []string
	Filters    Filters
}

// Days returns the inclusive day count of the date range.
func (p QueryParameters) Days() int {
	return int(p.EndDate.Sub(p.StartDate.Time).Hours()/24) + 1
}

// RunReportRequest is the inbound analytics query. Either ReportID or the ad
// hoc fields are used; a report reference takes full precedence.
type RunReportRequest struct {
	SourceID   string   `json:"sourceId,omitempty"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
	Metrics    []string `json:"metrics,omitempty"`
	Dimensions []string `json:"dimensions,omitempty"`
	Filters    Filters  `json:"filters,omitempty"`
	ReportID   string   `json:"reportId,omitempty"`
}

// DimensionHeader names one requested dimension, in request order.
type DimensionHeader struct {
	Name string `json:"name"`
}

// MetricHeader names one requested metric with its numeric type tag.
type MetricHeader struct {
	Name string     `json:"name"`
	Type MetricType `json:"type"`
}

// DimensionValue is one dimension cell; all values travel as strings.
type DimensionValue struct {
	Value string `json:"value"`
}

// MetricValue is one metric cell; all values travel as strings.
type MetricValue struct {
	Value string `json:"value"`
}

// ReportRow holds one value per requested dimension and metric, positionally
// aligned to the headers.
type ReportRow struct {
	DimensionValues []DimensionValue `json:"dimensionValues"`
	MetricValues    []MetricValue    `json:"metricValues"`
}

// RunReportResponse mirrors the GA4 Data API report shape so chart consumers
// need no adaptation layer.
type RunReportResponse struct {
	DimensionHeaders []DimensionHeader `json:"dimensionHeaders"`
	MetricHeaders    []MetricHeader    `json:"metricHeaders"`
	Rows             []ReportRow       `json:"rows"`
}
