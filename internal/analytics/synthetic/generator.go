package synthetic

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/pulsemetrics/analytics-manager/internal/entity"
)

// Generator is the default analytics client. It fabricates a GA4-shaped
// result table from resolved query parameters without calling out to the
// Google Analytics Data API, so the rest of the system can be exercised
// without live credentials.
type Generator struct{}

// New creates a new Generator.
func New() *Generator {
	return &Generator{}
}

// Fixed category lists per dimension. Order matters: when one of these
// dimensions is the primary dimension, rows are emitted in list order.
var dimensionCategories = map[string][]string{
	entity.DimensionSource:  {"Google", "Direct", "Facebook", "Twitter", "Email", "Referral"},
	entity.DimensionChannel: {"Organic Search", "Direct", "Social", "Email", "Referral", "Paid Search"},
	entity.DimensionCountry: {"France", "United States", "United Kingdom", "Germany", "Canada", "Spain"},
	entity.DimensionDevice:  {"Desktop", "Mobile", "Tablet"},
	entity.DimensionBrowser: {"Chrome", "Safari", "Firefox", "Edge", "Opera"},
}

var genericCategories = []string{"Category 1", "Category 2", "Category 3", "Category 4"}

// RunReport generates one row per unit of the primary dimension: per day of
// the range when "date" is requested, per category value when the first
// dimension is categorical. Any other primary dimension yields zero rows
// rather than an error.
func (g *Generator) RunReport(ctx context.Context, src *entity.Source, params entity.QueryParameters) (*entity.RunReportResponse, error) {
	resp := &entity.RunReportResponse{
		DimensionHeaders: make([]entity.DimensionHeader, 0, len(params.Dimensions)),
		MetricHeaders:    make([]entity.MetricHeader, 0, len(params.Metrics)),
		Rows:             []entity.ReportRow{},
	}

	for _, dim := range params.Dimensions {
		resp.DimensionHeaders = append(resp.DimensionHeaders, entity.DimensionHeader{Name: dim})
	}
	for _, metric := range params.Metrics {
		resp.MetricHeaders = append(resp.MetricHeaders, entity.MetricHeader{
			Name: metric,
			Type: entity.MetricTypeOf(metric),
		})
	}

	switch {
	case containsDate(params.Dimensions):
		resp.Rows = g.dateRows(params)
	case len(params.Dimensions) > 0 && isCategorical(params.Dimensions[0]):
		resp.Rows = g.categoryRows(params)
	}

	return resp, nil
}

func containsDate(dimensions []string) bool {
	for _, d := range dimensions {
		if d == entity.DimensionDate {
			return true
		}
	}
	return false
}

func isCategorical(dimension string) bool {
	_, ok := dimensionCategories[dimension]
	return ok
}

func categoriesFor(dimension string) []string {
	if categories, ok := dimensionCategories[dimension]; ok {
		return categories
	}
	return genericCategories
}

func randomCategory(dimension string) string {
	categories := categoriesFor(dimension)
	return categories[rand.IntN(len(categories))]
}

// dateRows emits one row per day of [start, end] inclusive, in
// chronological order.
func (g *Generator) dateRows(params entity.QueryParameters) []entity.ReportRow {
	days := params.Days()
	rows := make([]entity.ReportRow, 0, max(days, 0))

	for i := 0; i < days; i++ {
		date := params.StartDate.AddDate(0, 0, i)

		dimensionValues := make([]entity.DimensionValue, 0, len(params.Dimensions))
		for _, dim := range params.Dimensions {
			var value string
			switch dim {
			case entity.DimensionDate:
				value = date.Format("2006-01-02")
			case entity.DimensionWeek:
				// 1-based day index within the range
				value = fmt.Sprintf("Week %d", i/7+1)
			case entity.DimensionMonth:
				value = date.Month().String()
			default:
				value = randomCategory(dim)
			}
			dimensionValues = append(dimensionValues, entity.DimensionValue{Value: value})
		}

		rows = append(rows, entity.ReportRow{
			DimensionValues: dimensionValues,
			MetricValues:    metricValues(params.Metrics, params.Filters),
		})
	}
	return rows
}

// categoryRows emits one row per category of the first dimension, in fixed
// list order.
func (g *Generator) categoryRows(params entity.QueryParameters) []entity.ReportRow {
	primary := params.Dimensions[0]
	categories := categoriesFor(primary)
	rows := make([]entity.ReportRow, 0, len(categories))

	for _, category := range categories {
		dimensionValues := make([]entity.DimensionValue, 0, len(params.Dimensions))
		for _, dim := range params.Dimensions {
			if dim == primary {
				dimensionValues = append(dimensionValues, entity.DimensionValue{Value: category})
				continue
			}
			dimensionValues = append(dimensionValues, entity.DimensionValue{Value: randomCategory(dim)})
		}

		rows = append(rows, entity.ReportRow{
			DimensionValues: dimensionValues,
			MetricValues:    metricValues(params.Metrics, params.Filters),
		})
	}
	return rows
}

// metricValues synthesizes one value per requested metric. Count metrics
// are scaled by the filter factor and floored; rate metrics ignore it.
func metricValues(metrics []string, filters entity.Filters) []entity.MetricValue {
	factor := filterFactor(filters)

	values := make([]entity.MetricValue, 0, len(metrics))
	for _, metric := range metrics {
		var value string
		switch metric {
		case entity.MetricActiveUsers:
			value = scaledCount(100, 1000, factor)
		case entity.MetricNewUsers:
			value = scaledCount(50, 500, factor)
		case entity.MetricSessions:
			value = scaledCount(200, 1500, factor)
		case entity.MetricPageviews:
			value = scaledCount(500, 3000, factor)
		case entity.MetricBounceRate:
			value = fixedFloat(10, 70)
		case entity.MetricAvgSessionDuration:
			value = strconv.Itoa(rand.IntN(300) + 60)
		case entity.MetricPagesPerSession:
			value = fixedFloat(1, 5)
		case entity.MetricConversionRate:
			value = fixedFloat(1, 10)
		default:
			value = "0"
		}
		values = append(values, entity.MetricValue{Value: value})
	}
	return values
}

// filterFactor derives the multiplicative adjustment from the filter map.
// The device check runs after the country check and overwrites it, so when
// both match only the device factor applies.
func filterFactor(filters entity.Filters) decimal.Decimal {
	factor := decimal.NewFromInt(1)
	if filters[entity.FilterCountry] == "France" {
		factor = decimal.NewFromFloat(1.2)
	}
	if filters[entity.FilterDevice] == "mobile" {
		factor = decimal.NewFromFloat(0.8)
	}
	return factor
}

// scaledCount draws a uniform integer in [base, base+spread), applies the
// factor and floors.
func scaledCount(base, spread int, factor decimal.Decimal) string {
	n := int64(rand.IntN(spread) + base)
	return decimal.NewFromInt(n).Mul(factor).Floor().String()
}

// fixedFloat draws a uniform float in [base, base+spread) formatted with
// two decimal places.
func fixedFloat(base, spread float64) string {
	return decimal.NewFromFloat(rand.Float64()*spread + base).StringFixed(2)
}
